package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"communityroots/internal/domain"
)

type registrationService struct {
	catalog domain.EventCatalog
	regRepo domain.RegistrationRepository
	email   domain.EmailService
	crm     domain.CRMClient
	logger  *slog.Logger
	now     func() time.Time
}

// NewRegistrationService creates a RegistrationService with the given
// collaborators.
func NewRegistrationService(
	catalog domain.EventCatalog,
	regRepo domain.RegistrationRepository,
	email domain.EmailService,
	crm domain.CRMClient,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		catalog: catalog,
		regRepo: regRepo,
		email:   email,
		crm:     crm,
		logger:  logger,
		now:     time.Now,
	}
}

// Register runs the registration workflow. The capacity and duplicate
// pre-checks give callers precise error messages; the repository's
// conditional insert and unique index enforce the same rules atomically, so
// two requests racing for the last spot cannot both succeed. Once the row
// exists the outcome is success regardless of how the side effects fare.
func (s *registrationService) Register(ctx context.Context, in domain.RegistrationInput) (*domain.Registration, error) {
	event, err := s.catalog.EventBySlug(ctx, in.EventSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	count, err := s.regRepo.CountByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if count >= event.Capacity {
		return nil, domain.ErrEventFull
	}

	exists, err := s.regRepo.ExistsByEventAndEmail(ctx, event.ID, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	reg := domain.NewRegistration(event, in.FirstName, in.LastName, in.Email, in.Phone, s.now())
	if err := s.regRepo.Create(ctx, reg, event.Capacity); err != nil {
		if errors.Is(err, domain.ErrEventFull) || errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if attempt(ctx, s.logger, "registration confirmation email", func() error {
		return s.email.SendRegistrationConfirmation(ctx, &domain.RegistrationEmailData{
			Email:      reg.Email,
			FirstName:  reg.FirstName,
			EventTitle: event.Title,
			EventDate:  event.StartsAt.Format("Monday, January 2, 2006 at 3:04 PM"),
			Location:   event.Location,
		})
	}) {
		reg.ConfirmationSent = true
		attempt(ctx, s.logger, "mark confirmation sent", func() error {
			return s.regRepo.SetConfirmationSent(ctx, reg.ID)
		})
	}

	attempt(ctx, s.logger, "registration crm sync", func() error {
		crmID, err := s.crm.UpsertContact(ctx, domain.ContactUpsert{
			Email:     reg.Email,
			FirstName: reg.FirstName,
			LastName:  reg.LastName,
			Phone:     reg.Phone,
			Tags:      []string{"event:" + event.Slug},
		})
		if err != nil {
			return err
		}
		reg.CRMContactID = crmID
		return s.regRepo.SetCRMContactID(ctx, reg.ID, crmID)
	})

	return reg, nil
}
