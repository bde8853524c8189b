package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/thejurists/site-api/internal/api/middleware"
	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// stubContentService implements only the methods a test sets; the embedded
// interface panics on anything else.
type stubContentService struct {
	ports.ContentService
	getBlogFn    func(ctx context.Context, id uint64) (*domain.BlogArticle, error)
	upsertFn     func(ctx context.Context, caller domain.CallerIdentity, a domain.BlogArticle) (uint64, error)
	listTopicsFn func(ctx context.Context, f ports.TrendingTopicFilter) ([]domain.TrendingTopic, error)
	byAreaFn     func(ctx context.Context, p domain.PracticeArea) ([]domain.ServiceDetails, error)
	directoryFn  func(ctx context.Context, f ports.LegalListingFilter) ([]domain.LegalListing, error)
}

func (s *stubContentService) GetBlogArticleByID(ctx context.Context, id uint64) (*domain.BlogArticle, error) {
	return s.getBlogFn(ctx, id)
}

func (s *stubContentService) AddOrUpdateBlogArticle(ctx context.Context, caller domain.CallerIdentity, a domain.BlogArticle) (uint64, error) {
	return s.upsertFn(ctx, caller, a)
}

func (s *stubContentService) ListTrendingTopics(ctx context.Context, f ports.TrendingTopicFilter) ([]domain.TrendingTopic, error) {
	return s.listTopicsFn(ctx, f)
}

func (s *stubContentService) GetServicesByPracticeArea(ctx context.Context, p domain.PracticeArea) ([]domain.ServiceDetails, error) {
	return s.byAreaFn(ctx, p)
}

func (s *stubContentService) GetLegalDirectory(ctx context.Context, f ports.LegalListingFilter) ([]domain.LegalListing, error) {
	return s.directoryFn(ctx, f)
}

func TestContentHandler_GetBlog(t *testing.T) {
	e := newEcho()
	h := NewContentHandler(&stubContentService{
		getBlogFn: func(_ context.Context, id uint64) (*domain.BlogArticle, error) {
			if id == 1 {
				return &domain.BlogArticle{ID: 1, Title: "Bail basics"}, nil
			}
			return nil, nil
		},
	})

	c, rec := newContext(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.GetBlog(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var a domain.BlogArticle
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil || a.Title != "Bail basics" {
		t.Fatalf("unexpected body %s (%v)", rec.Body.String(), err)
	}

	c, _ = newContext(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := h.GetBlog(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentHandler_UpsertBlog(t *testing.T) {
	e := newEcho()
	h := NewContentHandler(&stubContentService{
		upsertFn: func(_ context.Context, caller domain.CallerIdentity, a domain.BlogArticle) (uint64, error) {
			if caller != "alice" {
				return 0, domain.ErrUnauthorized
			}
			if a.ID != 4 || a.Category != domain.PracticeIPLaw || a.PublishedDate.Year() != 2025 {
				t.Fatalf("unexpected article %+v", a)
			}
			return a.ID, nil
		},
	})

	body := `{"id":4,"title":"Trademarks 101","category":"ipLaw","published_date":"2025-02-01T10:00:00+05:30"}`

	c, rec := newContext(e, http.MethodPut, "/v1/blog-articles", body)
	middleware.SetCaller(c, "alice")
	if err := h.UpsertBlog(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(e, http.MethodPut, "/v1/blog-articles", body)
	middleware.SetCaller(c, "bob")
	if err := h.UpsertBlog(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestContentHandler_ListTopics(t *testing.T) {
	e := newEcho()
	var got ports.TrendingTopicFilter
	h := NewContentHandler(&stubContentService{
		listTopicsFn: func(_ context.Context, f ports.TrendingTopicFilter) ([]domain.TrendingTopic, error) {
			got = f
			return nil, nil
		},
	})

	c, rec := newContext(e, http.MethodGet, "/v1/trending-topics?posted=false&relevance=local", "")
	if err := h.ListTopics(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Posted == nil || *got.Posted || got.TrendRelevance != domain.TrendLocal {
		t.Fatalf("unexpected filter %+v", got)
	}

	c, _ = newContext(e, http.MethodGet, "/v1/trending-topics?posted=maybe", "")
	if code := httpCode(t, h.ListTopics(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestContentHandler_ListServicesAndDirectory(t *testing.T) {
	e := newEcho()
	h := NewContentHandler(&stubContentService{
		byAreaFn: func(_ context.Context, p domain.PracticeArea) ([]domain.ServiceDetails, error) {
			if p != domain.PracticeTaxLaw {
				t.Fatalf("unexpected practice area %s", p)
			}
			return []domain.ServiceDetails{{ID: 1, Title: "GST advisory"}}, nil
		},
		directoryFn: func(_ context.Context, f ports.LegalListingFilter) ([]domain.LegalListing, error) {
			if f.Jurisdiction != domain.JurisdictionRangareddy || f.Specialization != domain.PracticeFamilyLaw {
				t.Fatalf("unexpected filter %+v", f)
			}
			return nil, nil
		},
	})

	c, rec := newContext(e, http.MethodGet, "/v1/services?practice_area=taxLaw", "")
	if err := h.ListServices(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(e, http.MethodGet, "/v1/services?practice_area=taxLaw&jurisdiction=Hyderabad", "")
	if code := httpCode(t, h.ListServices(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	c, _ = newContext(e, http.MethodGet, "/v1/legal-listings?jurisdiction=Rangareddy&practice_area=familyLaw", "")
	if err := h.ListListings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
