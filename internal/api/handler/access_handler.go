package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/api/metrics"
	"github.com/thejurists/site-api/internal/api/middleware"
	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// AccessHandler handles the bootstrap and role endpoints.
type AccessHandler struct {
	service ports.AccessService
}

func NewAccessHandler(service ports.AccessService) *AccessHandler {
	return &AccessHandler{service: service}
}

// Initialized handles GET /v1/access/initialized.
//
// @Summary      Report whether the bootstrap admin has been claimed
// @Tags         access
// @Produce      json
// @Success      200  {object}  initializedResponse
// @Router       /v1/access/initialized [get]
func (h *AccessHandler) Initialized(c echo.Context) error {
	ok, err := h.service.IsAdminActorFieldInitialized(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, initializedResponse{Initialized: ok})
}

// Initialize handles POST /v1/access/initialize. The first authenticated
// caller becomes the bootstrap admin; every later call gets 409.
//
// @Summary      Claim the bootstrap admin slot
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/access/initialize [post]
func (h *AccessHandler) Initialize(c echo.Context) error {
	err := h.service.InitializeAccessControl(c.Request().Context(), middleware.Caller(c))
	switch {
	case err == nil:
		metrics.BootstrapAttemptsTotal.WithLabelValues("initialized").Inc()
	case errors.Is(err, domain.ErrAlreadyInitialized):
		metrics.BootstrapAttemptsTotal.WithLabelValues("already_initialized").Inc()
		return err
	case errors.Is(err, domain.ErrAnonymousCaller):
		metrics.BootstrapAttemptsTotal.WithLabelValues("anonymous").Inc()
		return err
	default:
		metrics.BootstrapAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// IsAdmin handles GET /v1/access/admin.
//
// @Summary      Report whether the caller is an admin
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminResponse
// @Router       /v1/access/admin [get]
func (h *AccessHandler) IsAdmin(c echo.Context) error {
	ok, err := h.service.IsCallerAdmin(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminResponse{IsAdmin: ok})
}

// Role handles GET /v1/access/role.
//
// @Summary      Get the caller's effective role
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roleResponse
// @Router       /v1/access/role [get]
func (h *AccessHandler) Role(c echo.Context) error {
	role, err := h.service.GetCallerUserRole(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: string(role)})
}

// AssignRole handles PUT /v1/access/roles/:identity.
//
// @Summary      Assign a role to an identity
// @Tags         access
// @Accept       json
// @Security     BearerAuth
// @Param        identity  path      string             true  "Target identity"
// @Param        body      body      assignRoleRequest  true  "Role to assign"
// @Success      204
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      409       {object}  errorResponse
// @Router       /v1/access/roles/{identity} [put]
func (h *AccessHandler) AssignRole(c echo.Context) error {
	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	target := domain.CallerIdentity(strings.TrimSpace(c.Param("identity")))
	err := h.service.AssignCallerUserRole(c.Request().Context(), middleware.Caller(c), target, domain.Role(req.Role))
	if err != nil {
		return denied(err, domain.ActionAssignRole)
	}
	return c.NoContent(http.StatusNoContent)
}

// denied counts err against action when the gate rejected the caller.
func denied(err error, action domain.Action) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		metrics.AuthzDeniedTotal.WithLabelValues(string(action)).Inc()
	}
	return err
}
