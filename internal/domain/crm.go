package domain

import "context"

// ContactUpsert is the payload for a CRM contact upsert. Tags carry context
// for the marketing team, e.g. "event:summer-cleanup", "volunteer",
// "newsletter".
type ContactUpsert struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Tags      []string
}

// CRMClient upserts contact records in the external CRM. Keyed by email and
// idempotent: upserting the same email twice merges tags rather than creating
// a second contact. Every call site treats CRM sync as best-effort.
type CRMClient interface {
	// UpsertContact creates or updates the contact and returns its CRM id.
	UpsertContact(ctx context.Context, c ContactUpsert) (string, error)
}
