package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
	"github.com/thejurists/site-api/internal/infrastructure/db/memory"
	"github.com/thejurists/site-api/internal/policy"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type harness struct {
	access   *AccessService
	profiles *ProfileService
	leads    *LeadService
	content  *ContentService
}

func newHarness(t *testing.T, throttle ports.LeadThrottle, publisher ports.LeadPublisher) *harness {
	t.Helper()

	enforcer, err := policy.New()
	if err != nil {
		t.Fatalf("policy.New: %v", err)
	}

	log := zerolog.Nop()
	profileRepo := memory.NewProfileRepository()
	access := NewAccessService(memory.NewAccessControlRepository(), profileRepo, enforcer, log)

	leads := NewLeadService(memory.NewContactSubmissionRepository(), access, throttle, publisher, log)
	leads.now = func() time.Time { return fixedNow }

	content := NewContentService(ContentRepositories{
		Blog:     memory.NewBlogRepository(),
		Services: memory.NewServiceRepository(),
		Topics:   memory.NewTrendingTopicRepository(),
		Listings: memory.NewLegalListingRepository(),
	}, access, "https://thejurists.in/", log)
	content.now = func() time.Time { return fixedNow }

	return &harness{
		access:   access,
		profiles: NewProfileService(profileRepo, log),
		leads:    leads,
		content:  content,
	}
}

// bootstrap makes admin the bootstrap admin or fails the test.
func (h *harness) bootstrap(t *testing.T, admin domain.CallerIdentity) {
	t.Helper()
	if err := h.access.InitializeAccessControl(context.Background(), admin); err != nil {
		t.Fatalf("InitializeAccessControl(%s): %v", admin, err)
	}
}

type stubThrottle struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubThrottle) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

type recordingPublisher struct {
	mu    sync.Mutex
	leads []domain.ContactFormSubmission
}

func (p *recordingPublisher) Publish(lead domain.ContactFormSubmission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.leads = append(p.leads, lead)
}

func (p *recordingPublisher) published() []domain.ContactFormSubmission {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ContactFormSubmission(nil), p.leads...)
}

var errStoreDown = errors.New("store down")

func strPtr(s string) *string { return &s }
