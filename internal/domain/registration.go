package domain

import (
	"context"
	"time"
)

// Registration is one person's sign-up for an event. Created by the
// registration workflow; the two flag fields are patched afterwards as the
// side effects complete. Never deleted.
// swagger:model Registration
type Registration struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	EventSlug        string    `json:"event_slug"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Attended         bool      `json:"attended"`
	ConfirmationSent bool      `json:"confirmation_sent"`
	CRMContactID     string    `json:"crm_contact_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewRegistration returns a Registration for the given event and attendee.
// ID is assigned by the repository on create.
func NewRegistration(event *Event, firstName, lastName, email, phone string, createdAt time.Time) *Registration {
	return &Registration{
		EventID:   event.ID,
		EventSlug: event.Slug,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: createdAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts the registration provided the event stays within
	// capacity. It returns ErrEventFull when the capacity condition fails
	// and ErrAlreadyRegistered when the (event, email) pair already exists.
	Create(ctx context.Context, reg *Registration, capacity int) error
	// CountByEvent returns the number of registrations for the event.
	CountByEvent(ctx context.Context, eventID string) (int, error)
	// ExistsByEventAndEmail reports whether the email already holds a
	// registration for the event.
	ExistsByEventAndEmail(ctx context.Context, eventID, email string) (bool, error)
	// SetConfirmationSent marks the confirmation email as sent.
	SetConfirmationSent(ctx context.Context, id string) error
	// SetCRMContactID records the CRM contact linked to the registration.
	SetCRMContactID(ctx context.Context, id, crmContactID string) error
}

// RegistrationInput is the validated payload for an event registration.
type RegistrationInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	EventSlug string
}

// RegistrationService defines the event registration workflow.
type RegistrationService interface {
	// Register runs the registration workflow: resolve the event, enforce
	// the capacity and duplicate gates, create the record, then attempt the
	// confirmation email and CRM sync as best-effort side effects.
	Register(ctx context.Context, in RegistrationInput) (*Registration, error)
}
