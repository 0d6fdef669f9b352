package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData holds data for the registration confirmation email.
type RegistrationEmailData struct {
	Email      string
	FirstName  string
	EventTitle string
	EventDate  string
	Location   string
}

// VolunteerEmailData holds data for the volunteer confirmation email.
type VolunteerEmailData struct {
	Email     string
	FirstName string
	Interest  string
}

// VolunteerApprovalEmailData holds data for the volunteer approval email.
type VolunteerApprovalEmailData struct {
	Email     string
	FirstName string
}

// ContactEmailData holds data for the contact-form emails: the copy sent to
// the team inbox and the acknowledgment sent back to the sender.
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
	SendVolunteerConfirmation(ctx context.Context, data *VolunteerEmailData) error
	SendVolunteerApproval(ctx context.Context, data *VolunteerApprovalEmailData) error
	SendContactNotification(ctx context.Context, data *ContactEmailData) error
	SendContactAcknowledgment(ctx context.Context, data *ContactEmailData) error
}
