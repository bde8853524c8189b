package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/api/metrics"
	"github.com/thejurists/site-api/internal/api/middleware"
	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// LeadHandler handles contact form submissions and the admin lead dashboard.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// Create handles POST /v1/contact-submissions.
//
// @Summary      Submit the contact form
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      createSubmissionRequest  true  "Contact details"
// @Success      201   {object}  idResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/contact-submissions [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req createSubmissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.CreateContactFormSubmission(c.Request().Context(), ports.CreateContactSubmissionInput{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Jurisdiction: domain.Jurisdiction(req.Jurisdiction),
		Message:      req.Message,
		ClientKey:    c.RealIP(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			metrics.LeadsThrottledTotal.Inc()
		}
		return err
	}

	metrics.LeadsSubmittedTotal.WithLabelValues(req.Jurisdiction).Inc()
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// List handles GET /v1/contact-submissions. At most one of jurisdiction and
// status may be given.
//
// @Summary      List contact form submissions
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        jurisdiction  query     string  false  "Filter by jurisdiction"
// @Param        status        query     string  false  "Filter by status (new, contacted, resolved)"
// @Success      200           {array}   domain.ContactFormSubmission
// @Failure      400           {object}  errorResponse
// @Failure      403           {object}  errorResponse
// @Router       /v1/contact-submissions [get]
func (h *LeadHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	caller := middleware.Caller(c)
	jurisdiction := c.QueryParam("jurisdiction")
	status := c.QueryParam("status")

	var (
		subs []domain.ContactFormSubmission
		err  error
	)
	switch {
	case jurisdiction != "" && status != "":
		return echo.NewHTTPError(http.StatusBadRequest, "filter by jurisdiction or status, not both")
	case jurisdiction != "":
		subs, err = h.service.GetContactFormSubmissionsByJurisdiction(ctx, caller, domain.Jurisdiction(jurisdiction))
	case status != "":
		subs, err = h.service.GetContactFormSubmissionsByStatus(ctx, caller, domain.SubmissionStatus(status))
	default:
		subs, err = h.service.GetAllContactFormSubmissions(ctx, caller)
	}
	if err != nil {
		return denied(err, domain.ActionReadLeads)
	}
	return c.JSON(http.StatusOK, subs)
}

// UpdateStatus handles PATCH /v1/contact-submissions/:id/status.
//
// @Summary      Update the follow-up status of a submission
// @Tags         leads
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Submission id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      204
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/contact-submissions/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Status is checked by the service, after the caller.
	err = h.service.UpdateContactFormSubmissionStatus(c.Request().Context(), middleware.Caller(c), id, domain.SubmissionStatus(req.Status))
	if err != nil {
		return denied(err, domain.ActionWriteLeads)
	}
	return c.NoContent(http.StatusNoContent)
}
