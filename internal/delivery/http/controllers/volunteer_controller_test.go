package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityroots/internal/domain"
)

func TestVolunteerController_Apply_Success(t *testing.T) {
	svc := &fakeVolunteerService{volunteer: &domain.Volunteer{ID: "vol-1"}}
	ctrl := NewVolunteerController(testLogger, svc)

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","interest":"gardening","motivation":"I want to help my neighborhood grow."}`
	req := httptest.NewRequest(http.MethodPost, "/api/volunteer", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Apply(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp VolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	assert.Equal(t, "vol-1", resp.VolunteerID)
}

func TestVolunteerController_Apply_MissingMotivation(t *testing.T) {
	ctrl := NewVolunteerController(testLogger, &fakeVolunteerService{})

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","interest":"gardening"}`
	req := httptest.NewRequest(http.MethodPost, "/api/volunteer", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Apply(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVolunteerController_Apply_StoreFailure(t *testing.T) {
	ctrl := NewVolunteerController(testLogger, &fakeVolunteerService{applyErr: errors.New("db down")})

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@x.com","interest":"gardening","motivation":"I want to help my neighborhood grow."}`
	req := httptest.NewRequest(http.MethodPost, "/api/volunteer", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Apply(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
