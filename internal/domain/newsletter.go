package domain

import "context"

// NewsletterRepository defines storage operations for newsletter subscribers.
type NewsletterRepository interface {
	// Subscribe records the email. Returns created=false when the email is
	// already subscribed; duplicates are never an error.
	Subscribe(ctx context.Context, email string) (created bool, err error)
}

// NewsletterService defines the newsletter subscription workflow.
type NewsletterService interface {
	// Subscribe stores the email and tags the CRM contact as a newsletter
	// subscriber (best-effort). Returns created=false for duplicates.
	Subscribe(ctx context.Context, email string) (created bool, err error)
}
