package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// AdminHandler handles the session-gated content mutation endpoints.
type AdminHandler struct {
	portfolioService service.PortfolioService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(portfolioService service.PortfolioService) *AdminHandler {
	return &AdminHandler{portfolioService: portfolioService}
}

// ContactRequest is the contact sub-object of a profile update.
type ContactRequest struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
}

// ProfileUpdateRequest is a partial profile update; absent fields are left
// untouched.
type ProfileUpdateRequest struct {
	Name              string                `json:"name"`
	Title             model.LocalizedString `json:"title"`
	About             model.LocalizedString `json:"about"`
	CVURL             string                `json:"cvUrl"`
	ProfilePictureURL string                `json:"profilePictureUrl"`
	Contact           *ContactRequest       `json:"contact"`
}

// SkillRequest represents a soft or hard skill to add.
type SkillRequest struct {
	Name string `json:"name" validate:"required"`
}

// SoftwareSkillRequest represents a software skill to add.
type SoftwareSkillRequest struct {
	Name    string `json:"name" validate:"required"`
	IconURL string `json:"iconUrl"`
}

func (h *AdminHandler) fail(c echo.Context, err error) error {
	he := errors.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("admin: %v", err)
	}
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_BODY",
	})
}

// Session godoc
// @Summary Return the authenticated session identity
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/session [get]
func (h *AdminHandler) Session(c echo.Context) error {
	claims, ok := c.Get(auth.ContextKey).(*auth.SessionClaims)
	if !ok {
		// The gate always runs first; a missing session here is a wiring bug.
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "no session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"username": claims.Username})
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/profile [put]
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	doc := model.ProfileDoc{
		Name:              req.Name,
		Title:             req.Title,
		About:             req.About,
		CVURL:             req.CVURL,
		ProfilePictureURL: req.ProfilePictureURL,
	}
	if req.Contact != nil {
		doc.Contact = &model.ContactDoc{Email: req.Contact.Email, LinkedIn: req.Contact.LinkedIn}
	}
	if err := h.portfolioService.UpdateProfile(c.Request().Context(), doc); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
}

// AddProject godoc
// @Summary Add a project
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.Project true "Project"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/projects [post]
func (h *AdminHandler) AddProject(c echo.Context) error {
	var project model.Project
	if err := c.Bind(&project); err != nil {
		return badBody(c)
	}
	created, err := h.portfolioService.AddProject(c.Request().Context(), project)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateProject godoc
// @Summary Update a project
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body model.Project true "Project"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/projects/{id} [put]
func (h *AdminHandler) UpdateProject(c echo.Context) error {
	var project model.Project
	if err := c.Bind(&project); err != nil {
		return badBody(c)
	}
	if err := h.portfolioService.UpdateProject(c.Request().Context(), c.Param("id"), project); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "project updated"})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags admin
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(c echo.Context) error {
	if err := h.portfolioService.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "project deleted"})
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.EducationItem true "Education entry"
// @Success 201 {object} model.EducationItem
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/education [post]
func (h *AdminHandler) AddEducation(c echo.Context) error {
	var item model.EducationItem
	if err := c.Bind(&item); err != nil {
		return badBody(c)
	}
	created, err := h.portfolioService.AddEducation(c.Request().Context(), item)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateEducation godoc
// @Summary Update an education entry
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Education ID"
// @Param request body model.EducationItem true "Education entry"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/education/{id} [put]
func (h *AdminHandler) UpdateEducation(c echo.Context) error {
	var item model.EducationItem
	if err := c.Bind(&item); err != nil {
		return badBody(c)
	}
	if err := h.portfolioService.UpdateEducation(c.Request().Context(), c.Param("id"), item); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "education updated"})
}

// DeleteEducation godoc
// @Summary Delete an education entry
// @Tags admin
// @Produce json
// @Param id path string true "Education ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/education/{id} [delete]
func (h *AdminHandler) DeleteEducation(c echo.Context) error {
	if err := h.portfolioService.DeleteEducation(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "education deleted"})
}

// AddCertificate godoc
// @Summary Add a certificate
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.Certificate true "Certificate"
// @Success 201 {object} model.Certificate
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/certificates [post]
func (h *AdminHandler) AddCertificate(c echo.Context) error {
	var cert model.Certificate
	if err := c.Bind(&cert); err != nil {
		return badBody(c)
	}
	created, err := h.portfolioService.AddCertificate(c.Request().Context(), cert)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCertificate godoc
// @Summary Update a certificate
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Certificate ID"
// @Param request body model.Certificate true "Certificate"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/certificates/{id} [put]
func (h *AdminHandler) UpdateCertificate(c echo.Context) error {
	var cert model.Certificate
	if err := c.Bind(&cert); err != nil {
		return badBody(c)
	}
	if err := h.portfolioService.UpdateCertificate(c.Request().Context(), c.Param("id"), cert); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "certificate updated"})
}

// DeleteCertificate godoc
// @Summary Delete a certificate
// @Tags admin
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/certificates/{id} [delete]
func (h *AdminHandler) DeleteCertificate(c echo.Context) error {
	if err := h.portfolioService.DeleteCertificate(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "certificate deleted"})
}

// AddSoftSkill godoc
// @Summary Add a soft skill
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SkillRequest true "Skill"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills/soft [post]
func (h *AdminHandler) AddSoftSkill(c echo.Context) error {
	return h.addSkill(c, h.portfolioService.AddSoftSkill)
}

// DeleteSoftSkill godoc
// @Summary Delete a soft skill
// @Tags admin
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/skills/soft/{id} [delete]
func (h *AdminHandler) DeleteSoftSkill(c echo.Context) error {
	if err := h.portfolioService.DeleteSoftSkill(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "skill deleted"})
}

// AddHardSkill godoc
// @Summary Add a hard skill
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SkillRequest true "Skill"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills/hard [post]
func (h *AdminHandler) AddHardSkill(c echo.Context) error {
	return h.addSkill(c, h.portfolioService.AddHardSkill)
}

// DeleteHardSkill godoc
// @Summary Delete a hard skill
// @Tags admin
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/skills/hard/{id} [delete]
func (h *AdminHandler) DeleteHardSkill(c echo.Context) error {
	if err := h.portfolioService.DeleteHardSkill(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "skill deleted"})
}

func (h *AdminHandler) addSkill(c echo.Context, add func(ctx context.Context, name string) (string, error)) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: "name is required",
			Code:  "MISSING_FIELDS",
		})
	}
	id, err := add(c.Request().Context(), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"_id": id, "name": req.Name})
}

// AddSoftwareSkill godoc
// @Summary Add a software skill
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SoftwareSkillRequest true "Software skill"
// @Success 201 {object} model.SoftwareSkill
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills/software [post]
func (h *AdminHandler) AddSoftwareSkill(c echo.Context) error {
	var req SoftwareSkillRequest
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: "name is required",
			Code:  "MISSING_FIELDS",
		})
	}
	created, err := h.portfolioService.AddSoftwareSkill(c.Request().Context(), model.SoftwareSkill{
		Name:    req.Name,
		IconURL: req.IconURL,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// DeleteSoftwareSkill godoc
// @Summary Delete a software skill
// @Tags admin
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/skills/software/{id} [delete]
func (h *AdminHandler) DeleteSoftwareSkill(c echo.Context) error {
	if err := h.portfolioService.DeleteSoftwareSkill(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "skill deleted"})
}
