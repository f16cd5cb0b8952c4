package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// AuthHandler handles the login and logout endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// sessionCookie builds the session cookie. maxAge <= 0 produces the
// expired form used by logout.
func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Login godoc
// @Summary Log in the administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: "username and password are required",
			Code:  "MISSING_FIELDS",
		})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Invalid credentials",
			})
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	c.SetCookie(sessionCookie(token, int(auth.SessionExpiry.Seconds())))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout godoc
// @Summary Log out and clear the session cookie
// @Tags auth
// @Success 302
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Stateless sessions: superseding the cookie is the whole logout.
	c.SetCookie(sessionCookie("", -1))
	return c.Redirect(http.StatusFound, auth.LoginPath)
}
