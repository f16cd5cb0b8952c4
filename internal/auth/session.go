package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// SessionExpiry is the duration for which session tokens are valid.
	SessionExpiry = 7 * 24 * time.Hour
	// CookieName is the cookie that carries the session token.
	CookieName = "session"
	// LoginPath is where unauthenticated admin requests are redirected.
	LoginPath = "/admin/login"
	// ContextKey is where the gate stores the verified SessionClaims on the
	// request context.
	ContextKey = "session"
)

// ErrInvalidSession is returned for any token that fails verification.
// Malformed, tampered and expired tokens are deliberately indistinguishable.
var ErrInvalidSession = errors.New("invalid session")

// SessionClaims is the signed session payload. ExpiresAt duplicates the
// registered exp claim; both are checked independently and both must pass.
type SessionClaims struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
	jwt.RegisteredClaims
}

// SessionService mints and verifies signed session tokens. Sessions are
// stateless: there is no server-side store and no revocation list.
type SessionService struct {
	secret []byte
}

// NewSessionService creates a session service with the given signing secret.
func NewSessionService(secret string) *SessionService {
	return &SessionService{
		secret: []byte(secret),
	}
}

// IssueSession produces a signed token for the given username, valid for
// SessionExpiry from now.
func (s *SessionService) IssueSession(username string) (string, error) {
	now := time.Now()
	expiresAt := now.Add(SessionExpiry)
	claims := &SessionClaims{
		Username:  username,
		ExpiresAt: expiresAt,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifySession validates a session token and returns its claims. It fails
// closed: signature mismatch, malformed input, an expired registered exp
// claim or an embedded ExpiresAt in the past all yield ErrInvalidSession.
func (s *SessionService) VerifySession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	// The embedded expiration is checked on top of the registered exp claim.
	if !claims.ExpiresAt.After(time.Now()) {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
