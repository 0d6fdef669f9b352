package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNewsletterService struct {
	created bool
	err     error
	got     string
}

func (f *fakeNewsletterService) Subscribe(ctx context.Context, email string) (bool, error) {
	f.got = email
	return f.created, f.err
}

func TestNewsletterController_Subscribe(t *testing.T) {
	tests := []struct {
		name        string
		created     bool
		wantMessage string
	}{
		{name: "new subscriber", created: true, wantMessage: "Thanks for subscribing!"},
		{name: "already subscribed", created: false, wantMessage: "You're already subscribed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeNewsletterService{created: tt.created}
			ctrl := NewNewsletterController(testLogger, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(`{"email":"jane@x.com"}`))
			w := httptest.NewRecorder()
			ctrl.Subscribe(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var resp NewsletterResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.True(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, "jane@x.com", svc.got)
		})
	}
}

func TestNewsletterController_Subscribe_InvalidEmail(t *testing.T) {
	ctrl := NewNewsletterController(testLogger, &fakeNewsletterService{})

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(`{"email":"not-an-email"}`))
	w := httptest.NewRecorder()
	ctrl.Subscribe(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewsletterController_Subscribe_StoreFailure(t *testing.T) {
	ctrl := NewNewsletterController(testLogger, &fakeNewsletterService{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(`{"email":"jane@x.com"}`))
	w := httptest.NewRecorder()
	ctrl.Subscribe(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
