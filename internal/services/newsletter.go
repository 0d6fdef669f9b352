package services

import (
	"context"
	"fmt"
	"log/slog"

	"communityroots/internal/domain"
)

type newsletterService struct {
	subRepo domain.NewsletterRepository
	crm     domain.CRMClient
	logger  *slog.Logger
}

// NewNewsletterService creates a NewsletterService with the given collaborators.
func NewNewsletterService(subRepo domain.NewsletterRepository, crm domain.CRMClient, logger *slog.Logger) domain.NewsletterService {
	return &newsletterService{
		subRepo: subRepo,
		crm:     crm,
		logger:  logger,
	}
}

// Subscribe stores the email and tags the CRM contact. Subscribing an email
// that is already on the list reports created=false, never an error.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (bool, error) {
	created, err := s.subRepo.Subscribe(ctx, email)
	if err != nil {
		return false, fmt.Errorf("subscribe: %w", err)
	}

	attempt(ctx, s.logger, "newsletter crm sync", func() error {
		_, err := s.crm.UpsertContact(ctx, domain.ContactUpsert{
			Email: email,
			Tags:  []string{"newsletter"},
		})
		return err
	})

	return created, nil
}
