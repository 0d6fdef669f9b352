package domain

import "context"

// ContactMessage is a contact-form submission. It is not persisted; it lives
// only for the duration of one request.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService defines the contact-form workflow.
type ContactService interface {
	// Submit forwards the message to the team inbox. The team notification
	// is the primary effect: its failure fails the request. The sender
	// acknowledgment and CRM sync are best-effort.
	Submit(ctx context.Context, msg ContactMessage) error
}
