package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *auth.SessionService,
	authHandler *handler.AuthHandler,
	portfolioHandler *handler.PortfolioHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sessionGate(sessions))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The login page itself; form rendering lives in the frontend.
	e.GET(auth.LoginPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "login required"})
	})

	// Gated admin page prefix.
	e.GET("/admin", adminHandler.Session)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/portfolio", portfolioHandler.GetPortfolio)

	// Admin routes (covered by the session gate via the path prefix)
	admin := api.Group("/admin")
	admin.GET("/session", adminHandler.Session)
	admin.PUT("/profile", adminHandler.UpdateProfile)
	admin.POST("/projects", adminHandler.AddProject)
	admin.PUT("/projects/:id", adminHandler.UpdateProject)
	admin.DELETE("/projects/:id", adminHandler.DeleteProject)
	admin.POST("/education", adminHandler.AddEducation)
	admin.PUT("/education/:id", adminHandler.UpdateEducation)
	admin.DELETE("/education/:id", adminHandler.DeleteEducation)
	admin.POST("/certificates", adminHandler.AddCertificate)
	admin.PUT("/certificates/:id", adminHandler.UpdateCertificate)
	admin.DELETE("/certificates/:id", adminHandler.DeleteCertificate)
	admin.POST("/skills/soft", adminHandler.AddSoftSkill)
	admin.DELETE("/skills/soft/:id", adminHandler.DeleteSoftSkill)
	admin.POST("/skills/hard", adminHandler.AddHardSkill)
	admin.DELETE("/skills/hard/:id", adminHandler.DeleteHardSkill)
	admin.POST("/skills/software", adminHandler.AddSoftwareSkill)
	admin.DELETE("/skills/software/:id", adminHandler.DeleteSoftwareSkill)
}

// sessionGate guards the admin path prefixes with the session cookie. Any
// verification failure redirects to the login page; the cause is never
// surfaced to the client. The login page is exempt so the redirect cannot
// loop.
func sessionGate(sessions *auth.SessionService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			if strings.HasPrefix(p, auth.LoginPath) {
				return true
			}
			return !strings.HasPrefix(p, "/admin") && !strings.HasPrefix(p, "/api/admin")
		},
		ContextKey:  auth.ContextKey,
		TokenLookup: "cookie:" + auth.CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return sessions.VerifySession(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, auth.LoginPath)
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
