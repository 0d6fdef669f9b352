package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"communityroots/internal/domain"

	"github.com/stretchr/testify/require"
)

type mockEventCatalog struct {
	events map[string]*domain.Event
	err    error
}

func (m *mockEventCatalog) PublishedEvents(ctx context.Context) ([]*domain.Event, error) {
	return nil, nil
}

func (m *mockEventCatalog) EventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

type mockRegistrationRepo struct {
	count     int
	countErr  error
	exists    bool
	createErr error

	created          []*domain.Registration
	confirmationSets []string
	crmIDSets        map[string]string
}

func (m *mockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration, capacity int) error {
	if m.createErr != nil {
		return m.createErr
	}
	reg.ID = "reg-1"
	m.created = append(m.created, reg)
	return nil
}

func (m *mockRegistrationRepo) CountByEvent(ctx context.Context, eventID string) (int, error) {
	return m.count, m.countErr
}

func (m *mockRegistrationRepo) ExistsByEventAndEmail(ctx context.Context, eventID, email string) (bool, error) {
	return m.exists, nil
}

func (m *mockRegistrationRepo) SetConfirmationSent(ctx context.Context, id string) error {
	m.confirmationSets = append(m.confirmationSets, id)
	return nil
}

func (m *mockRegistrationRepo) SetCRMContactID(ctx context.Context, id, crmContactID string) error {
	if m.crmIDSets == nil {
		m.crmIDSets = make(map[string]string)
	}
	m.crmIDSets[id] = crmContactID
	return nil
}

type mockEmailService struct {
	regErr       error
	volErr       error
	approvalErr  error
	teamErr      error
	ackErr       error
	regSent      []*domain.RegistrationEmailData
	volSent      []*domain.VolunteerEmailData
	approvalSent []*domain.VolunteerApprovalEmailData
	teamSent     []*domain.ContactEmailData
	ackSent      []*domain.ContactEmailData
}

func (m *mockEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if m.regErr != nil {
		return m.regErr
	}
	m.regSent = append(m.regSent, data)
	return nil
}

func (m *mockEmailService) SendVolunteerConfirmation(ctx context.Context, data *domain.VolunteerEmailData) error {
	if m.volErr != nil {
		return m.volErr
	}
	m.volSent = append(m.volSent, data)
	return nil
}

func (m *mockEmailService) SendVolunteerApproval(ctx context.Context, data *domain.VolunteerApprovalEmailData) error {
	if m.approvalErr != nil {
		return m.approvalErr
	}
	m.approvalSent = append(m.approvalSent, data)
	return nil
}

func (m *mockEmailService) SendContactNotification(ctx context.Context, data *domain.ContactEmailData) error {
	if m.teamErr != nil {
		return m.teamErr
	}
	m.teamSent = append(m.teamSent, data)
	return nil
}

func (m *mockEmailService) SendContactAcknowledgment(ctx context.Context, data *domain.ContactEmailData) error {
	if m.ackErr != nil {
		return m.ackErr
	}
	m.ackSent = append(m.ackSent, data)
	return nil
}

type mockCRMClient struct {
	id      string
	err     error
	upserts []domain.ContactUpsert
}

func (m *mockCRMClient) UpsertContact(ctx context.Context, c domain.ContactUpsert) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.upserts = append(m.upserts, c)
	return m.id, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func workshopEvent() *domain.Event {
	return &domain.Event{
		ID:       "ev-1",
		Slug:     "ai-workshop",
		Title:    "AI Workshop",
		StartsAt: time.Date(2026, 4, 18, 14, 0, 0, 0, time.UTC),
		Location: "Community Hall",
		Capacity: 50,
		Status:   domain.EventStatusPublished,
	}
}

func registrationInput() domain.RegistrationInput {
	return domain.RegistrationInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@x.com",
		EventSlug: "ai-workshop",
	}
}

func TestRegistrationService_Register_HappyPath(t *testing.T) {
	catalog := &mockEventCatalog{events: map[string]*domain.Event{"ai-workshop": workshopEvent()}}
	repo := &mockRegistrationRepo{count: 25}
	email := &mockEmailService{}
	crm := &mockCRMClient{id: "crm-9"}
	svc := NewRegistrationService(catalog, repo, email, crm, testLogger())

	reg, err := svc.Register(context.Background(), registrationInput())
	require.NoError(t, err)
	require.Equal(t, "reg-1", reg.ID)
	require.Equal(t, "ev-1", reg.EventID)
	require.Len(t, repo.created, 1)

	// Both side effects ran and both patches landed.
	require.Len(t, email.regSent, 1)
	require.Equal(t, "AI Workshop", email.regSent[0].EventTitle)
	require.True(t, reg.ConfirmationSent)
	require.Equal(t, []string{"reg-1"}, repo.confirmationSets)
	require.Len(t, crm.upserts, 1)
	require.Equal(t, []string{"event:ai-workshop"}, crm.upserts[0].Tags)
	require.Equal(t, "crm-9", reg.CRMContactID)
	require.Equal(t, "crm-9", repo.crmIDSets["reg-1"])
}

func TestRegistrationService_Register_EventFull(t *testing.T) {
	catalog := &mockEventCatalog{events: map[string]*domain.Event{"ai-workshop": workshopEvent()}}
	repo := &mockRegistrationRepo{count: 50}
	email := &mockEmailService{}
	svc := NewRegistrationService(catalog, repo, email, &mockCRMClient{}, testLogger())

	_, err := svc.Register(context.Background(), registrationInput())
	require.ErrorIs(t, err, domain.ErrEventFull)
	require.Empty(t, repo.created)
	require.Empty(t, email.regSent)
}

func TestRegistrationService_Register_Duplicate(t *testing.T) {
	catalog := &mockEventCatalog{events: map[string]*domain.Event{"ai-workshop": workshopEvent()}}
	repo := &mockRegistrationRepo{count: 25, exists: true}
	svc := NewRegistrationService(catalog, repo, &mockEmailService{}, &mockCRMClient{}, testLogger())

	_, err := svc.Register(context.Background(), registrationInput())
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	require.Empty(t, repo.created)
}

func TestRegistrationService_Register_UnknownEvent(t *testing.T) {
	catalog := &mockEventCatalog{events: map[string]*domain.Event{}}
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(catalog, repo, &mockEmailService{}, &mockCRMClient{}, testLogger())

	in := registrationInput()
	in.EventSlug = "no-such-event"
	_, err := svc.Register(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Empty(t, repo.created)
}

func TestRegistrationService_Register_RaceLostAtInsert(t *testing.T) {
	// Pre-checks passed but the conditional insert found the event full.
	catalog := &mockEventCatalog{events: map[string]*domain.Event{"ai-workshop": workshopEvent()}}
	repo := &mockRegistrationRepo{count: 49, createErr: domain.ErrEventFull}
	email := &mockEmailService{}
	svc := NewRegistrationService(catalog, repo, email, &mockCRMClient{}, testLogger())

	_, err := svc.Register(context.Background(), registrationInput())
	require.ErrorIs(t, err, domain.ErrEventFull)
	require.Empty(t, email.regSent)
}

func TestRegistrationService_Register_EmailFailureIsSwallowed(t *testing.T) {
	catalog := &mockEventCatalog{events: map[string]*domain.Event{"ai-workshop": workshopEvent()}}
	repo := &mockRegistrationRepo{count: 25}
	email := &mockEmailService{regErr: errors.New("smtp down")}
	crm := &mockCRMClient{id: "crm-9"}
	svc := NewRegistrationService(catalog, repo, email, crm, testLogger())

	reg, err := svc.Register(context.Background(), registrationInput())
	require.NoError(t, err)
	require.Equal(t, "reg-1", reg.ID)
	require.False(t, reg.ConfirmationSent)
	require.Empty(t, repo.confirmationSets)
	// The CRM branch is independent of the email branch.
	require.Len(t, crm.upserts, 1)
}

func TestRegistrationService_Register_CRMFailureIsSwallowed(t *testing.T) {
	catalog := &mockEventCatalog{events: map[string]*domain.Event{"ai-workshop": workshopEvent()}}
	repo := &mockRegistrationRepo{count: 25}
	email := &mockEmailService{}
	crm := &mockCRMClient{err: errors.New("crm down")}
	svc := NewRegistrationService(catalog, repo, email, crm, testLogger())

	reg, err := svc.Register(context.Background(), registrationInput())
	require.NoError(t, err)
	require.Equal(t, "reg-1", reg.ID)
	require.True(t, reg.ConfirmationSent)
	require.Empty(t, reg.CRMContactID)
}

func TestRegistrationService_Register_StoreError(t *testing.T) {
	catalog := &mockEventCatalog{events: map[string]*domain.Event{"ai-workshop": workshopEvent()}}
	repo := &mockRegistrationRepo{countErr: errors.New("store unavailable")}
	svc := NewRegistrationService(catalog, repo, &mockEmailService{}, &mockCRMClient{}, testLogger())

	_, err := svc.Register(context.Background(), registrationInput())
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrEventFull)
}
