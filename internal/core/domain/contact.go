package domain

import "time"

// SubmissionStatus tracks how far the firm has followed up on a lead.
type SubmissionStatus string

const (
	SubmissionNew       SubmissionStatus = "new"
	SubmissionContacted SubmissionStatus = "contacted"
	SubmissionResolved  SubmissionStatus = "resolved"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionNew, SubmissionContacted, SubmissionResolved:
		return true
	}
	return false
}

// ContactFormSubmission is a lead captured by the public contact form.
// Status is the only field that changes after creation.
type ContactFormSubmission struct {
	ID           uint64           `json:"id" bson:"_id"`
	Name         string           `json:"name" bson:"name"`
	Email        string           `json:"email" bson:"email"`
	PhoneNumber  string           `json:"phone_number" bson:"phone_number"`
	Jurisdiction Jurisdiction     `json:"jurisdiction" bson:"jurisdiction"`
	Message      *string          `json:"message,omitempty" bson:"message,omitempty"`
	Status       SubmissionStatus `json:"status" bson:"status"`
	Timestamp    time.Time        `json:"timestamp" bson:"timestamp"`
}
