package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/auth"
	"portfolio/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// stubAuthService returns a fixed token or error.
type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) CheckCredentials(ctx context.Context, username, password string) bool {
	return s.err == nil
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.token, s.err
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{validator.New()}
	h := NewAuthHandler(&stubAuthService{token: "signed-token"})

	c, rec := newLoginContext(e, `{"username":"admin","password":"s3cret"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, auth.CookieName)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{validator.New()}
	h := NewAuthHandler(&stubAuthService{err: service.ErrInvalidCredentials})

	c, rec := newLoginContext(e, `{"username":"admin","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `not json`},
		{name: "empty body", body: ``},
		{name: "missing password", body: `{"username":"admin"}`},
		{name: "missing username", body: `{"password":"s3cret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = &testValidator{validator.New()}
			h := NewAuthHandler(&stubAuthService{token: "never-used"})

			c, rec := newLoginContext(e, tt.body)
			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAuthHandler_Logout_ClearsCookieAndRedirects(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, auth.LoginPath, rec.Header().Get(echo.HeaderLocation))

	cookie := findCookie(t, rec, auth.CookieName)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
