package ports

import (
	"context"

	"github.com/thejurists/site-api/internal/core/domain"
)

// Zero-valued filter fields match everything. Results are always returned in
// insertion order.

type ContactSubmissionFilter struct {
	Jurisdiction domain.Jurisdiction
	Status       domain.SubmissionStatus
}

type ServiceFilter struct {
	Jurisdiction domain.Jurisdiction
	PracticeArea domain.PracticeArea
}

type TrendingTopicFilter struct {
	PracticeArea   domain.PracticeArea
	TrendRelevance domain.TrendRelevance
	Posted         *bool
}

type LegalListingFilter struct {
	Jurisdiction   domain.Jurisdiction
	Specialization domain.PracticeArea
}

// ContactSubmissionRepository persists leads.
type ContactSubmissionRepository interface {
	// Create assigns the next id to s and stores it.
	Create(ctx context.Context, s *domain.ContactFormSubmission) (uint64, error)
	List(ctx context.Context, filter ContactSubmissionFilter) ([]domain.ContactFormSubmission, error)
	// UpdateStatus fails with domain.ErrNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id uint64, status domain.SubmissionStatus) error
}

// BlogRepository persists blog articles.
type BlogRepository interface {
	// Upsert replaces the article with a.ID, or inserts it. A zero ID is
	// replaced by the next id. created reports whether a new row was added.
	Upsert(ctx context.Context, a *domain.BlogArticle) (created bool, err error)
	// FindByID fails with domain.ErrNotFound for unknown ids.
	FindByID(ctx context.Context, id uint64) (*domain.BlogArticle, error)
	List(ctx context.Context, category domain.PracticeArea) ([]domain.BlogArticle, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.ServiceDetails) (uint64, error)
	List(ctx context.Context, filter ServiceFilter) ([]domain.ServiceDetails, error)
}

type TrendingTopicRepository interface {
	Create(ctx context.Context, t *domain.TrendingTopic) (uint64, error)
	// MarkPosted fails with domain.ErrNotFound for unknown ids.
	MarkPosted(ctx context.Context, id uint64) error
	List(ctx context.Context, filter TrendingTopicFilter) ([]domain.TrendingTopic, error)
}

type LegalListingRepository interface {
	Create(ctx context.Context, l *domain.LegalListing) (uint64, error)
	List(ctx context.Context, filter LegalListingFilter) ([]domain.LegalListing, error)
}
