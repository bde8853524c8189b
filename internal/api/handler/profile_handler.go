package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/api/middleware"
	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// ProfileHandler handles display profile endpoints.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMine handles GET /v1/profile. Answers 204 when the caller has no profile.
//
// @Summary      Get the caller's profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Success      204
// @Router       /v1/profile [get]
func (h *ProfileHandler) GetMine(c echo.Context) error {
	p, err := h.service.GetCallerUserProfile(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return err
	}
	return writeProfile(c, p)
}

// SaveMine handles PUT /v1/profile.
//
// @Summary      Create or replace the caller's profile
// @Tags         profiles
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile"
// @Success      204
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profile [put]
func (h *ProfileHandler) SaveMine(c echo.Context) error {
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.service.SaveCallerUserProfile(c.Request().Context(), middleware.Caller(c), domain.UserProfile{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /v1/profiles/:identity.
//
// @Summary      Get a profile by identity
// @Tags         profiles
// @Produce      json
// @Param        identity  path  string  true  "Identity"
// @Success      200       {object}  profileResponse
// @Success      204
// @Router       /v1/profiles/{identity} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	id := domain.CallerIdentity(strings.TrimSpace(c.Param("identity")))
	p, err := h.service.GetUserProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeProfile(c, p)
}

func writeProfile(c echo.Context, p *domain.UserProfile) error {
	if p == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, profileResponse{Name: p.Name, Email: p.Email})
}
