package controllers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityroots/internal/domain"
)

type fakeVolunteerService struct {
	volunteer   *domain.Volunteer
	applyErr    error
	notifyErr   error
	notifyCalls int
	notifiedID  string
}

func (f *fakeVolunteerService) Apply(ctx context.Context, in domain.VolunteerInput) (*domain.Volunteer, error) {
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	return f.volunteer, nil
}

func (f *fakeVolunteerService) NotifyApproved(ctx context.Context, id string) error {
	f.notifyCalls++
	f.notifiedID = id
	return f.notifyErr
}

func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookController_VolunteerApproved_ValidSignature(t *testing.T) {
	svc := &fakeVolunteerService{}
	ctrl := NewWebhookController(testLogger, svc, "top-secret")

	body := `{"id":"vol-1","firstName":"Jane","email":"jane@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/volunteer-approved", strings.NewReader(body))
	req.Header.Set("Sanity-Webhook-Signature", signBody("top-secret", body))
	w := httptest.NewRecorder()
	ctrl.VolunteerApproved(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 1, svc.notifyCalls)
	assert.Equal(t, "vol-1", svc.notifiedID)
}

func TestWebhookController_VolunteerApproved_RejectedSignatures(t *testing.T) {
	body := `{"id":"vol-1","firstName":"Jane","email":"jane@x.com"}`
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing signature", header: ""},
		{name: "wrong secret", header: signBody("other-secret", body)},
		{name: "signature over different body", header: signBody("top-secret", body+" ")},
		{name: "malformed header", header: "sha256=not-hex"},
		{name: "missing prefix", header: strings.TrimPrefix(signBody("top-secret", body), "sha256=")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeVolunteerService{}
			ctrl := NewWebhookController(testLogger, svc, "top-secret")

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/volunteer-approved", strings.NewReader(body))
			if tt.header != "" {
				req.Header.Set("Sanity-Webhook-Signature", tt.header)
			}
			w := httptest.NewRecorder()
			ctrl.VolunteerApproved(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Zero(t, svc.notifyCalls, "no side effect on a rejected delivery")
		})
	}
}

func TestWebhookController_VolunteerApproved_NoSecretConfigured(t *testing.T) {
	svc := &fakeVolunteerService{}
	ctrl := NewWebhookController(testLogger, svc, "")

	body := `{"id":"vol-1","firstName":"Jane","email":"jane@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/volunteer-approved", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.VolunteerApproved(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.notifyCalls)
}

func TestWebhookController_VolunteerApproved_InvalidPayload(t *testing.T) {
	svc := &fakeVolunteerService{}
	ctrl := NewWebhookController(testLogger, svc, "")

	// Missing the email field.
	body := `{"id":"vol-1","firstName":"Jane"}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/volunteer-approved", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.VolunteerApproved(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.notifyCalls)
}

func TestWebhookController_VolunteerApproved_UnknownVolunteer(t *testing.T) {
	svc := &fakeVolunteerService{notifyErr: domain.ErrNotFound}
	ctrl := NewWebhookController(testLogger, svc, "")

	body := `{"id":"vol-missing","firstName":"Jane","email":"jane@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/volunteer-approved", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.VolunteerApproved(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebhookController_VolunteerApproved_SendFailure(t *testing.T) {
	svc := &fakeVolunteerService{notifyErr: errors.New("smtp down")}
	ctrl := NewWebhookController(testLogger, svc, "")

	body := `{"id":"vol-1","firstName":"Jane","email":"jane@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/volunteer-approved", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.VolunteerApproved(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
