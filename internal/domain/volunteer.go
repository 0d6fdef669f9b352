package domain

import (
	"context"
	"time"
)

// Volunteer statuses. Transitions out of pending happen in the CMS by
// operator action; this system only observes them through the
// volunteer-approved webhook.
const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusActive   = "active"
	VolunteerStatusInactive = "inactive"
)

// Volunteer is a volunteer application.
// swagger:model Volunteer
type Volunteer struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Interest         string    `json:"interest"`
	Availability     string    `json:"availability,omitempty"`
	Experience       string    `json:"experience,omitempty"`
	Motivation       string    `json:"motivation"`
	Status           string    `json:"status"`
	ConfirmationSent bool      `json:"confirmation_sent"`
	CRMContactID     string    `json:"crm_contact_id,omitempty"`
	AppliedAt        time.Time `json:"applied_at"`
}

// VolunteerRepository defines storage operations for volunteers.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) error
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	SetConfirmationSent(ctx context.Context, id string) error
	SetCRMContactID(ctx context.Context, id, crmContactID string) error
}

// VolunteerInput is the validated payload for a volunteer application.
type VolunteerInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Interest     string
	Availability string
	Experience   string
	Motivation   string
}

// VolunteerService defines the volunteer application workflow.
type VolunteerService interface {
	// Apply creates the volunteer record, then attempts the confirmation
	// email and CRM sync as best-effort side effects. Duplicate
	// applications are allowed.
	Apply(ctx context.Context, in VolunteerInput) (*Volunteer, error)
	// NotifyApproved sends the approval email for a volunteer whose status
	// an operator moved to approved. Triggered by the CMS webhook; the
	// stored application is authoritative, so an unknown id is ErrNotFound.
	NotifyApproved(ctx context.Context, id string) error
}
