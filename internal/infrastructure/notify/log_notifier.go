// Package notify holds the lead notifiers.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
)

// LogNotifier writes each lead to the log for the front desk to pick up.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "lead_notifier").Logger()}
}

func (n *LogNotifier) Notify(_ context.Context, lead domain.ContactFormSubmission) error {
	ev := n.log.Info().
		Uint64("id", lead.ID).
		Str("name", lead.Name).
		Str("email", lead.Email).
		Str("phone", lead.PhoneNumber).
		Str("jurisdiction", string(lead.Jurisdiction)).
		Time("received_at", lead.Timestamp)
	if lead.Message != nil {
		ev = ev.Str("message", *lead.Message)
	}
	ev.Msg("new lead")
	return nil
}
