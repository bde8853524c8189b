package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// LeadService implements lead capture and the admin lead dashboard.
type LeadService struct {
	repo      ports.ContactSubmissionRepository
	gate      ports.Gate
	throttle  ports.LeadThrottle  // optional
	publisher ports.LeadPublisher // optional
	now       func() time.Time
	log       zerolog.Logger
}

// NewLeadService returns a LeadService. throttle and publisher may be nil.
func NewLeadService(
	repo ports.ContactSubmissionRepository,
	gate ports.Gate,
	throttle ports.LeadThrottle,
	publisher ports.LeadPublisher,
	log zerolog.Logger,
) *LeadService {
	return &LeadService{
		repo:      repo,
		gate:      gate,
		throttle:  throttle,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

// CreateContactFormSubmission stores a new lead. Status is always "new" and the
// timestamp is taken from the service clock.
func (s *LeadService) CreateContactFormSubmission(ctx context.Context, in ports.CreateContactSubmissionInput) (uint64, error) {
	if err := validateSubmission(in); err != nil {
		return 0, err
	}

	// 1. Throttle. A throttle outage must not drop leads.
	if s.throttle != nil && in.ClientKey != "" {
		ok, err := s.throttle.Allow(ctx, in.ClientKey)
		if err != nil {
			s.log.Warn().Err(err).Str("client", in.ClientKey).Msg("lead throttle check failed, accepting submission")
		} else if !ok {
			return 0, domain.ErrRateLimited
		}
	}

	// 2. Persist.
	sub := &domain.ContactFormSubmission{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Jurisdiction: in.Jurisdiction,
		Message:      in.Message,
		Status:       domain.SubmissionNew,
		Timestamp:    s.now(),
	}
	id, err := s.repo.Create(ctx, sub)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store contact submission")
		return 0, fmt.Errorf("create contact submission: %w", err)
	}
	sub.ID = id

	// 3. Hand off for delivery.
	if s.publisher != nil {
		s.publisher.Publish(*sub)
	}

	s.log.Info().Uint64("id", id).Str("jurisdiction", string(in.Jurisdiction)).Msg("contact submission created")
	return id, nil
}

func (s *LeadService) GetAllContactFormSubmissions(ctx context.Context, caller domain.CallerIdentity) ([]domain.ContactFormSubmission, error) {
	if err := s.gate.Authorize(ctx, caller, domain.ActionReadLeads); err != nil {
		return nil, err
	}
	return s.list(ctx, ports.ContactSubmissionFilter{})
}

func (s *LeadService) GetContactFormSubmissionsByJurisdiction(ctx context.Context, caller domain.CallerIdentity, j domain.Jurisdiction) ([]domain.ContactFormSubmission, error) {
	if err := s.gate.Authorize(ctx, caller, domain.ActionReadLeads); err != nil {
		return nil, err
	}
	if !j.Valid() {
		return nil, fmt.Errorf("list contact submissions: %w: unknown jurisdiction %q", domain.ErrInvalidInput, j)
	}
	return s.list(ctx, ports.ContactSubmissionFilter{Jurisdiction: j})
}

func (s *LeadService) GetContactFormSubmissionsByStatus(ctx context.Context, caller domain.CallerIdentity, st domain.SubmissionStatus) ([]domain.ContactFormSubmission, error) {
	if err := s.gate.Authorize(ctx, caller, domain.ActionReadLeads); err != nil {
		return nil, err
	}
	if !st.Valid() {
		return nil, fmt.Errorf("list contact submissions: %w: unknown status %q", domain.ErrInvalidInput, st)
	}
	return s.list(ctx, ports.ContactSubmissionFilter{Status: st})
}

// UpdateContactFormSubmissionStatus sets the follow-up status of a lead.
// Authorization is checked before the id is looked up.
func (s *LeadService) UpdateContactFormSubmissionStatus(ctx context.Context, caller domain.CallerIdentity, id uint64, status domain.SubmissionStatus) error {
	if err := s.gate.Authorize(ctx, caller, domain.ActionWriteLeads); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("update contact submission: %w: unknown status %q", domain.ErrInvalidInput, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update contact submission %d: %w", id, err)
	}

	s.log.Info().Uint64("id", id).Str("status", string(status)).Str("caller", caller.String()).Msg("contact submission status updated")
	return nil
}

func (s *LeadService) list(ctx context.Context, f ports.ContactSubmissionFilter) ([]domain.ContactFormSubmission, error) {
	subs, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return subs, nil
}

func validateSubmission(in ports.CreateContactSubmissionInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	case strings.TrimSpace(in.PhoneNumber) == "":
		return fmt.Errorf("%w: phone number is required", domain.ErrInvalidInput)
	case !in.Jurisdiction.Valid():
		return fmt.Errorf("%w: unknown jurisdiction %q", domain.ErrInvalidInput, in.Jurisdiction)
	}
	return nil
}
