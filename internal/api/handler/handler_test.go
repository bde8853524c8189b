package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/api/middleware"
	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

type stubLeadService struct {
	createFn func(ctx context.Context, in ports.CreateContactSubmissionInput) (uint64, error)
	listFn   func(ctx context.Context, caller domain.CallerIdentity, f ports.ContactSubmissionFilter) ([]domain.ContactFormSubmission, error)
	updateFn func(ctx context.Context, caller domain.CallerIdentity, id uint64, status domain.SubmissionStatus) error
}

func (s *stubLeadService) CreateContactFormSubmission(ctx context.Context, in ports.CreateContactSubmissionInput) (uint64, error) {
	return s.createFn(ctx, in)
}

func (s *stubLeadService) GetAllContactFormSubmissions(ctx context.Context, caller domain.CallerIdentity) ([]domain.ContactFormSubmission, error) {
	return s.listFn(ctx, caller, ports.ContactSubmissionFilter{})
}

func (s *stubLeadService) GetContactFormSubmissionsByJurisdiction(ctx context.Context, caller domain.CallerIdentity, j domain.Jurisdiction) ([]domain.ContactFormSubmission, error) {
	return s.listFn(ctx, caller, ports.ContactSubmissionFilter{Jurisdiction: j})
}

func (s *stubLeadService) GetContactFormSubmissionsByStatus(ctx context.Context, caller domain.CallerIdentity, st domain.SubmissionStatus) ([]domain.ContactFormSubmission, error) {
	return s.listFn(ctx, caller, ports.ContactSubmissionFilter{Status: st})
}

func (s *stubLeadService) UpdateContactFormSubmissionStatus(ctx context.Context, caller domain.CallerIdentity, id uint64, status domain.SubmissionStatus) error {
	return s.updateFn(ctx, caller, id, status)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	return e
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestLeadHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubLeadService{
		createFn: func(_ context.Context, in ports.CreateContactSubmissionInput) (uint64, error) {
			if in.Jurisdiction != domain.JurisdictionHyderabad || in.ClientKey != "203.0.113.7" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Message == nil || *in.Message != "Need advice" {
				t.Fatalf("message not passed through")
			}
			return 7, nil
		},
	}
	h := NewLeadHandler(stub)

	c, rec := newContext(e, http.MethodPost, "/v1/contact-submissions",
		`{"name":"Ravi","email":"ravi@example.com","phone_number":"9848022338","jurisdiction":"Hyderabad","message":"Need advice"}`)
	c.Request().RemoteAddr = "10.0.0.1:41000"
	c.Request().Header.Set(echo.HeaderXForwardedFor, "203.0.113.7")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp idResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 7 {
		t.Fatalf("expected id 7, got %d", resp.ID)
	}
}

func TestLeadHandler_Create_Validation(t *testing.T) {
	e := newEcho()
	h := NewLeadHandler(&stubLeadService{
		createFn: func(context.Context, ports.CreateContactSubmissionInput) (uint64, error) {
			t.Fatalf("service must not be called for invalid payloads")
			return 0, nil
		},
	})

	cases := map[string]string{
		"missing name":     `{"email":"a@b.co","phone_number":"1","jurisdiction":"Hyderabad"}`,
		"bad email":        `{"name":"A","email":"nope","phone_number":"1","jurisdiction":"Hyderabad"}`,
		"bad jurisdiction": `{"name":"A","email":"a@b.co","phone_number":"1","jurisdiction":"Mumbai"}`,
		"missing phone":    `{"name":"A","email":"a@b.co","jurisdiction":"Cyberabad"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(e, http.MethodPost, "/v1/contact-submissions", body)
			if code := httpCode(t, h.Create(c)); code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", code)
			}
		})
	}

	c, _ := newContext(e, http.MethodPost, "/v1/contact-submissions", `{"name":`)
	if code := httpCode(t, h.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", code)
	}
}

func TestLeadHandler_List_Filters(t *testing.T) {
	e := newEcho()
	var got ports.ContactSubmissionFilter
	h := NewLeadHandler(&stubLeadService{
		listFn: func(_ context.Context, caller domain.CallerIdentity, f ports.ContactSubmissionFilter) ([]domain.ContactFormSubmission, error) {
			if caller != "alice" {
				t.Fatalf("caller not passed through, got %q", caller)
			}
			got = f
			return []domain.ContactFormSubmission{}, nil
		},
	})

	c, rec := newContext(e, http.MethodGet, "/v1/contact-submissions?status=contacted", "")
	middleware.SetCaller(c, "alice")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || got.Status != domain.SubmissionContacted {
		t.Fatalf("unexpected result %d %+v", rec.Code, got)
	}

	c, _ = newContext(e, http.MethodGet, "/v1/contact-submissions?status=new&jurisdiction=Hyderabad", "")
	if code := httpCode(t, h.List(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400 when both filters are set, got %d", code)
	}
}

func TestLeadHandler_UpdateStatus(t *testing.T) {
	e := newEcho()
	h := NewLeadHandler(&stubLeadService{
		updateFn: func(_ context.Context, caller domain.CallerIdentity, id uint64, status domain.SubmissionStatus) error {
			if caller.IsAnonymous() {
				return domain.ErrUnauthorized
			}
			if id != 12 || status != domain.SubmissionResolved {
				t.Fatalf("unexpected args %d %s", id, status)
			}
			return nil
		},
	})

	c, rec := newContext(e, http.MethodPatch, "/", `{"status":"resolved"}`)
	c.SetParamNames("id")
	c.SetParamValues("12")
	middleware.SetCaller(c, "alice")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, _ = newContext(e, http.MethodPatch, "/", `{"status":"resolved"}`)
	c.SetParamNames("id")
	c.SetParamValues("12")
	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	c, _ = newContext(e, http.MethodPatch, "/", `{"status":"resolved"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if code := httpCode(t, h.UpdateStatus(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", code)
	}
}
