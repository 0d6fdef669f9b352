package services

import (
	"context"
	"fmt"
	"log"

	"communityroots/internal/domain"
)

type emailService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	teamInbox string
}

// NewEmailService returns an EmailService that renders named templates and
// sends them through the given Mailer. teamInbox receives contact-form
// notifications.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, teamInbox string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, teamInbox: teamInbox}
}

// SendRegistrationConfirmation sends the event registration confirmation
// using the "registration_confirmation" template.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration email data is nil")
	}
	if err := s.send("registration_confirmation", data.Email, data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Registration confirmation sent to %s", data.Email)
	return nil
}

// SendVolunteerConfirmation sends the application-received email using the
// "volunteer_confirmation" template.
func (s *emailService) SendVolunteerConfirmation(ctx context.Context, data *domain.VolunteerEmailData) error {
	if data == nil {
		return fmt.Errorf("volunteer email data is nil")
	}
	if err := s.send("volunteer_confirmation", data.Email, data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Volunteer confirmation sent to %s", data.Email)
	return nil
}

// SendVolunteerApproval sends the approval notice using the
// "volunteer_approved" template.
func (s *emailService) SendVolunteerApproval(ctx context.Context, data *domain.VolunteerApprovalEmailData) error {
	if data == nil {
		return fmt.Errorf("volunteer approval data is nil")
	}
	if err := s.send("volunteer_approved", data.Email, data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Volunteer approval sent to %s", data.Email)
	return nil
}

// SendContactNotification forwards a contact-form message to the team inbox
// using the "contact_team" template.
func (s *emailService) SendContactNotification(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact email data is nil")
	}
	if err := s.send("contact_team", s.teamInbox, data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Contact notification forwarded to %s", s.teamInbox)
	return nil
}

// SendContactAcknowledgment sends the "we got your message" email back to the
// sender using the "contact_ack" template.
func (s *emailService) SendContactAcknowledgment(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact email data is nil")
	}
	if err := s.send("contact_ack", data.Email, data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Contact acknowledgment sent to %s", data.Email)
	return nil
}

func (s *emailService) send(templateName, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	return nil
}
