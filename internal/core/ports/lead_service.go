package ports

import (
	"context"

	"github.com/thejurists/site-api/internal/core/domain"
)

// CreateContactSubmissionInput is the DTO passed from the transport layer to
// LeadService. Status and timestamp are not part of it: the service sets them.
type CreateContactSubmissionInput struct {
	Name         string
	Email        string
	PhoneNumber  string
	Jurisdiction domain.Jurisdiction
	Message      *string
	// ClientKey identifies the submitter for throttling (usually the client IP).
	ClientKey string
}

// LeadThrottle limits how many leads one client may submit per window.
type LeadThrottle interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LeadPublisher hands accepted leads to the delivery mechanism without blocking
// the request.
type LeadPublisher interface {
	Publish(lead domain.ContactFormSubmission)
}

// LeadNotifier delivers a single lead to the firm.
type LeadNotifier interface {
	Notify(ctx context.Context, lead domain.ContactFormSubmission) error
}

// LeadService handles contact form submissions.
type LeadService interface {
	CreateContactFormSubmission(ctx context.Context, input CreateContactSubmissionInput) (uint64, error)
	GetAllContactFormSubmissions(ctx context.Context, caller domain.CallerIdentity) ([]domain.ContactFormSubmission, error)
	GetContactFormSubmissionsByJurisdiction(ctx context.Context, caller domain.CallerIdentity, j domain.Jurisdiction) ([]domain.ContactFormSubmission, error)
	GetContactFormSubmissionsByStatus(ctx context.Context, caller domain.CallerIdentity, s domain.SubmissionStatus) ([]domain.ContactFormSubmission, error)
	UpdateContactFormSubmissionStatus(ctx context.Context, caller domain.CallerIdentity, id uint64, status domain.SubmissionStatus) error
}
