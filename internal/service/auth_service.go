package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/repository"
)

// ErrInvalidCredentials is returned when username or password is incorrect.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles authentication operations.
type AuthService interface {
	CheckCredentials(ctx context.Context, username, password string) bool
	Login(ctx context.Context, username, password string) (token string, err error)
}

type authService struct {
	profileRepo repository.ProfileRepository
	sessions    *auth.SessionService
}

// NewAuthService creates a new authentication service.
func NewAuthService(profileRepo repository.ProfileRepository, sessions *auth.SessionService) AuthService {
	return &authService{
		profileRepo: profileRepo,
		sessions:    sessions,
	}
}

// CheckCredentials reports whether the username exists and the password
// matches its stored bcrypt hash. An absent user, a record without a hash
// and a store failure all come out false; the store failure is logged here
// since the boolean swallows it.
func (s *authService) CheckCredentials(ctx context.Context, username, password string) bool {
	user, err := s.profileRepo.FindUserByUsername(ctx, username)
	if err != nil {
		log.Printf("check credentials for %q: %v", username, err)
		return false
	}
	if user == nil || user.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// Login verifies credentials and mints a session token. Every credential
// failure maps to ErrInvalidCredentials without further detail.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.CheckCredentials(ctx, username, password) {
		return "", ErrInvalidCredentials
	}
	token, err := s.sessions.IssueSession(username)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}
