package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockNewsletterRepo struct {
	created bool
	err     error
	emails  []string
}

func (m *mockNewsletterRepo) Subscribe(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.emails = append(m.emails, email)
	return m.created, nil
}

func TestNewsletterService_Subscribe_New(t *testing.T) {
	repo := &mockNewsletterRepo{created: true}
	crm := &mockCRMClient{id: "crm-3"}
	svc := NewNewsletterService(repo, crm, testLogger())

	created, err := svc.Subscribe(context.Background(), "sam@x.com")
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, crm.upserts, 1)
	require.Equal(t, []string{"newsletter"}, crm.upserts[0].Tags)
}

func TestNewsletterService_Subscribe_Duplicate(t *testing.T) {
	repo := &mockNewsletterRepo{created: false}
	svc := NewNewsletterService(repo, &mockCRMClient{}, testLogger())

	created, err := svc.Subscribe(context.Background(), "sam@x.com")
	require.NoError(t, err)
	require.False(t, created)
}

func TestNewsletterService_Subscribe_StoreError(t *testing.T) {
	repo := &mockNewsletterRepo{err: errors.New("store unavailable")}
	crm := &mockCRMClient{}
	svc := NewNewsletterService(repo, crm, testLogger())

	_, err := svc.Subscribe(context.Background(), "sam@x.com")
	require.Error(t, err)
	require.Empty(t, crm.upserts)
}

func TestNewsletterService_Subscribe_CRMFailureIsSwallowed(t *testing.T) {
	repo := &mockNewsletterRepo{created: true}
	crm := &mockCRMClient{err: errors.New("crm down")}
	svc := NewNewsletterService(repo, crm, testLogger())

	created, err := svc.Subscribe(context.Background(), "sam@x.com")
	require.NoError(t, err)
	require.True(t, created)
}
