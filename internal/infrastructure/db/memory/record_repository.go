package memory

import (
	"context"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// --- Contact submissions ---

type ContactSubmissionRepository struct {
	t *table[domain.ContactFormSubmission]
}

func NewContactSubmissionRepository() *ContactSubmissionRepository {
	return &ContactSubmissionRepository{t: newTable(func(s domain.ContactFormSubmission) domain.ContactFormSubmission {
		if s.Message != nil {
			m := *s.Message
			s.Message = &m
		}
		return s
	})}
}

func (r *ContactSubmissionRepository) Create(_ context.Context, s *domain.ContactFormSubmission) (uint64, error) {
	id, err := r.t.insert(*s, func(row *domain.ContactFormSubmission, id uint64) { row.ID = id })
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

func (r *ContactSubmissionRepository) List(_ context.Context, f ports.ContactSubmissionFilter) ([]domain.ContactFormSubmission, error) {
	return r.t.filter(func(s domain.ContactFormSubmission) bool {
		return (f.Jurisdiction == "" || s.Jurisdiction == f.Jurisdiction) &&
			(f.Status == "" || s.Status == f.Status)
	}), nil
}

func (r *ContactSubmissionRepository) UpdateStatus(_ context.Context, id uint64, status domain.SubmissionStatus) error {
	if !r.t.update(id, func(s *domain.ContactFormSubmission) { s.Status = status }) {
		return domain.ErrNotFound
	}
	return nil
}

// --- Blog ---

type BlogRepository struct {
	t *table[domain.BlogArticle]
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{t: newTable[domain.BlogArticle](nil)}
}

func (r *BlogRepository) Upsert(_ context.Context, a *domain.BlogArticle) (bool, error) {
	if a.ID == 0 {
		id, err := r.t.insert(*a, func(row *domain.BlogArticle, id uint64) { row.ID = id })
		if err != nil {
			return false, err
		}
		a.ID = id
		return true, nil
	}
	return r.t.put(a.ID, *a)
}

func (r *BlogRepository) FindByID(_ context.Context, id uint64) (*domain.BlogArticle, error) {
	a, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *BlogRepository) List(_ context.Context, category domain.PracticeArea) ([]domain.BlogArticle, error) {
	return r.t.filter(func(a domain.BlogArticle) bool {
		return category == "" || a.Category == category
	}), nil
}

// --- Services ---

type ServiceRepository struct {
	t *table[domain.ServiceDetails]
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{t: newTable(func(s domain.ServiceDetails) domain.ServiceDetails {
		s.Keywords = cloneStrings(s.Keywords)
		return s
	})}
}

func (r *ServiceRepository) Create(_ context.Context, s *domain.ServiceDetails) (uint64, error) {
	id, err := r.t.insert(*s, func(row *domain.ServiceDetails, id uint64) { row.ID = id })
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

func (r *ServiceRepository) List(_ context.Context, f ports.ServiceFilter) ([]domain.ServiceDetails, error) {
	return r.t.filter(func(s domain.ServiceDetails) bool {
		return (f.Jurisdiction == "" || s.Jurisdiction == f.Jurisdiction) &&
			(f.PracticeArea == "" || s.PracticeArea == f.PracticeArea)
	}), nil
}

// --- Trending topics ---

type TrendingTopicRepository struct {
	t *table[domain.TrendingTopic]
}

func NewTrendingTopicRepository() *TrendingTopicRepository {
	return &TrendingTopicRepository{t: newTable(func(t domain.TrendingTopic) domain.TrendingTopic {
		t.Keywords = cloneStrings(t.Keywords)
		return t
	})}
}

func (r *TrendingTopicRepository) Create(_ context.Context, t *domain.TrendingTopic) (uint64, error) {
	id, err := r.t.insert(*t, func(row *domain.TrendingTopic, id uint64) { row.ID = id })
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

func (r *TrendingTopicRepository) MarkPosted(_ context.Context, id uint64) error {
	if !r.t.update(id, func(t *domain.TrendingTopic) { t.IsPosted = true }) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TrendingTopicRepository) List(_ context.Context, f ports.TrendingTopicFilter) ([]domain.TrendingTopic, error) {
	return r.t.filter(func(t domain.TrendingTopic) bool {
		return (f.PracticeArea == "" || t.PracticeArea == f.PracticeArea) &&
			(f.TrendRelevance == "" || t.TrendRelevance == f.TrendRelevance) &&
			(f.Posted == nil || t.IsPosted == *f.Posted)
	}), nil
}

// --- Legal directory ---

type LegalListingRepository struct {
	t *table[domain.LegalListing]
}

func NewLegalListingRepository() *LegalListingRepository {
	return &LegalListingRepository{t: newTable[domain.LegalListing](nil)}
}

func (r *LegalListingRepository) Create(_ context.Context, l *domain.LegalListing) (uint64, error) {
	id, err := r.t.insert(*l, func(row *domain.LegalListing, id uint64) { row.ID = id })
	if err != nil {
		return 0, err
	}
	l.ID = id
	return id, nil
}

func (r *LegalListingRepository) List(_ context.Context, f ports.LegalListingFilter) ([]domain.LegalListing, error) {
	return r.t.filter(func(l domain.LegalListing) bool {
		return (f.Jurisdiction == "" || l.Jurisdiction == f.Jurisdiction) &&
			(f.Specialization == "" || l.Specialization == f.Specialization)
	}), nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
