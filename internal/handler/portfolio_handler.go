package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// PortfolioHandler handles the public content endpoint.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetPortfolio godoc
// @Summary Get the portfolio content
// @Description Returns the canonical content model, or a single-locale view when locale is given.
// @Tags portfolio
// @Produce json
// @Param locale query string false "Locale (en or id)"
// @Success 200 {object} model.Portfolio
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	portfolio, err := h.portfolioService.LoadContent(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("get portfolio: %v", err)
		he := errors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	if raw := c.QueryParam("locale"); raw != "" {
		return c.JSON(http.StatusOK, portfolio.Localize(model.ParseLocale(raw)))
	}
	return c.JSON(http.StatusOK, portfolio)
}
