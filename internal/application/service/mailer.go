package service

import (
	"context"

	"portfolio/internal/domain/contact"
)

// Mailer is the contact-form side-channel. Both sends are best-effort: a
// failure is logged by the caller and never propagated to the submitter.
type Mailer interface {
	// NotifyOwner sends the submission to the site owner.
	NotifyOwner(ctx context.Context, s *contact.Submission) error
	// Acknowledge sends the auto-reply to the submitter.
	Acknowledge(ctx context.Context, s *contact.Submission) error
}
