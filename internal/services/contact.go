package services

import (
	"context"
	"fmt"
	"log/slog"

	"communityroots/internal/domain"
)

type contactService struct {
	email  domain.EmailService
	crm    domain.CRMClient
	logger *slog.Logger
}

// NewContactService creates a ContactService with the given collaborators.
func NewContactService(email domain.EmailService, crm domain.CRMClient, logger *slog.Logger) domain.ContactService {
	return &contactService{
		email:  email,
		crm:    crm,
		logger: logger,
	}
}

// Submit forwards the message to the team. Nothing is persisted, so the team
// notification is the primary effect: if it fails the message is lost and the
// caller must see the failure. The sender acknowledgment and CRM sync are
// best-effort.
func (s *contactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	data := &domain.ContactEmailData{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}

	if err := s.email.SendContactNotification(ctx, data); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	attempt(ctx, s.logger, "contact acknowledgment email", func() error {
		return s.email.SendContactAcknowledgment(ctx, data)
	})

	attempt(ctx, s.logger, "contact crm sync", func() error {
		_, err := s.crm.UpsertContact(ctx, domain.ContactUpsert{
			Email:     msg.Email,
			FirstName: msg.Name,
			Tags:      []string{"contact"},
		})
		return err
	})

	return nil
}
