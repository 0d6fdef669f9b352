package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"communityroots/internal/domain"
)

type volunteerService struct {
	volRepo domain.VolunteerRepository
	email   domain.EmailService
	crm     domain.CRMClient
	logger  *slog.Logger
	now     func() time.Time
}

// NewVolunteerService creates a VolunteerService with the given collaborators.
func NewVolunteerService(
	volRepo domain.VolunteerRepository,
	email domain.EmailService,
	crm domain.CRMClient,
	logger *slog.Logger,
) domain.VolunteerService {
	return &volunteerService{
		volRepo: volRepo,
		email:   email,
		crm:     crm,
		logger:  logger,
		now:     time.Now,
	}
}

// Apply creates the volunteer record and then attempts the confirmation email
// and CRM sync as best-effort side effects. Unlike event registration there
// is no capacity and no duplicate gate; applying twice is allowed.
func (s *volunteerService) Apply(ctx context.Context, in domain.VolunteerInput) (*domain.Volunteer, error) {
	v := &domain.Volunteer{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Interest:     in.Interest,
		Availability: in.Availability,
		Experience:   in.Experience,
		Motivation:   in.Motivation,
		Status:       domain.VolunteerStatusPending,
		AppliedAt:    s.now(),
	}
	if err := s.volRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create volunteer: %w", err)
	}

	if attempt(ctx, s.logger, "volunteer confirmation email", func() error {
		return s.email.SendVolunteerConfirmation(ctx, &domain.VolunteerEmailData{
			Email:     v.Email,
			FirstName: v.FirstName,
			Interest:  v.Interest,
		})
	}) {
		v.ConfirmationSent = true
		attempt(ctx, s.logger, "mark confirmation sent", func() error {
			return s.volRepo.SetConfirmationSent(ctx, v.ID)
		})
	}

	attempt(ctx, s.logger, "volunteer crm sync", func() error {
		crmID, err := s.crm.UpsertContact(ctx, domain.ContactUpsert{
			Email:     v.Email,
			FirstName: v.FirstName,
			LastName:  v.LastName,
			Phone:     v.Phone,
			Tags:      []string{"volunteer", "interest:" + v.Interest},
		})
		if err != nil {
			return err
		}
		v.CRMContactID = crmID
		return s.volRepo.SetCRMContactID(ctx, v.ID, crmID)
	})

	return v, nil
}

// NotifyApproved sends the approval email for a volunteer an operator moved
// to approved in the CMS. The stored application is authoritative: an id the
// store does not know yields ErrNotFound and no email, and the notice goes to
// the stored address even if the webhook payload carries a stale one. A send
// failure is returned to the caller so the CMS can retry the delivery.
func (s *volunteerService) NotifyApproved(ctx context.Context, id string) error {
	v, err := s.volRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("load volunteer %s: %w", id, err)
	}

	if err := s.email.SendVolunteerApproval(ctx, &domain.VolunteerApprovalEmailData{
		Email:     v.Email,
		FirstName: v.FirstName,
	}); err != nil {
		return fmt.Errorf("send approval email for volunteer %s: %w", id, err)
	}
	return nil
}
