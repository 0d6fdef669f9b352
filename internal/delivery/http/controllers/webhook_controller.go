package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"communityroots/internal/delivery/http/helpers"
	"communityroots/internal/domain"
	"communityroots/pkg/validation"
)

// signatureHeader carries the CMS webhook signature: "sha256=<hex hmac>" over
// the raw request body.
const signatureHeader = "Sanity-Webhook-Signature"

// WebhookController handles inbound CMS webhooks.
type WebhookController struct {
	Logger     *slog.Logger
	Volunteers domain.VolunteerService
	Secret     string
}

// NewWebhookController creates a WebhookController. An empty secret disables
// signature verification; when a secret is configured, verification is
// mandatory.
func NewWebhookController(logger *slog.Logger, volunteers domain.VolunteerService, secret string) *WebhookController {
	return &WebhookController{
		Logger:     logger,
		Volunteers: volunteers,
		Secret:     secret,
	}
}

// VolunteerApprovedPayload is the body the CMS posts when an operator moves a
// volunteer to approved.
type VolunteerApprovedPayload struct {
	ID        string `json:"id" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// WebhookResponse is the success envelope for webhook deliveries.
type WebhookResponse struct {
	Success bool `json:"success"`
}

// VolunteerApproved godoc
// @Summary CMS webhook: volunteer approved
// @Description Sends the approval notice to the volunteer. When a webhook secret is configured, the raw body must carry a valid HMAC-SHA256 signature; an invalid or missing signature is rejected before any effect.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param body body controllers.VolunteerApprovedPayload true "Approval payload"
// @Success 200 {object} controllers.WebhookResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/webhooks/volunteer-approved [post]
func (c *WebhookController) VolunteerApproved(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "Could not read request body")
		return
	}

	if c.Secret != "" && !c.verifySignature(body, r.Header.Get(signatureHeader)) {
		c.Logger.WarnContext(r.Context(), "webhook signature rejected", "path", r.URL.Path)
		helpers.WriteError(w, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var payload VolunteerApprovedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.Struct(&payload); len(errs) > 0 {
		helpers.WriteValidationErrors(w, errs)
		return
	}

	if err := c.Volunteers.NotifyApproved(r.Context(), payload.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Volunteer not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "volunteer approval notification failed", "volunteer_id", payload.ID, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to send approval notification")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, WebhookResponse{Success: true})
}

// verifySignature checks "sha256=<hex>" against HMAC-SHA256(secret, body)
// using a constant-time compare.
func (c *WebhookController) verifySignature(body []byte, header string) bool {
	provided, ok := strings.CutPrefix(header, "sha256=")
	if !ok || provided == "" {
		return false
	}
	decoded, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}
