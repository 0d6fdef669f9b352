package services

import (
	"context"
	"errors"
	"testing"

	"communityroots/internal/domain"

	"github.com/stretchr/testify/require"
)

func contactMessage() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    "Sam",
		Email:   "sam@x.com",
		Subject: "Partnership",
		Message: "We would love to collaborate with you.",
	}
}

func TestContactService_Submit_HappyPath(t *testing.T) {
	email := &mockEmailService{}
	crm := &mockCRMClient{id: "crm-2"}
	svc := NewContactService(email, crm, testLogger())

	err := svc.Submit(context.Background(), contactMessage())
	require.NoError(t, err)
	require.Len(t, email.teamSent, 1)
	require.Len(t, email.ackSent, 1)
	require.Len(t, crm.upserts, 1)
	require.Equal(t, []string{"contact"}, crm.upserts[0].Tags)
}

func TestContactService_Submit_TeamNotificationIsPrimary(t *testing.T) {
	// The message is not persisted anywhere; losing the team email loses the
	// message, so this failure must surface.
	email := &mockEmailService{teamErr: errors.New("smtp down")}
	crm := &mockCRMClient{}
	svc := NewContactService(email, crm, testLogger())

	err := svc.Submit(context.Background(), contactMessage())
	require.Error(t, err)
	require.Empty(t, email.ackSent)
	require.Empty(t, crm.upserts)
}

func TestContactService_Submit_AckFailureIsSwallowed(t *testing.T) {
	email := &mockEmailService{ackErr: errors.New("smtp down")}
	crm := &mockCRMClient{}
	svc := NewContactService(email, crm, testLogger())

	err := svc.Submit(context.Background(), contactMessage())
	require.NoError(t, err)
	require.Len(t, email.teamSent, 1)
	require.Len(t, crm.upserts, 1)
}

func TestContactService_Submit_CRMFailureIsSwallowed(t *testing.T) {
	email := &mockEmailService{}
	crm := &mockCRMClient{err: errors.New("crm down")}
	svc := NewContactService(email, crm, testLogger())

	require.NoError(t, svc.Submit(context.Background(), contactMessage()))
	require.Len(t, email.teamSent, 1)
	require.Len(t, email.ackSent, 1)
}
