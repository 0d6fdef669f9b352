package controllers

import (
	"log/slog"
	"net/http"

	"communityroots/internal/delivery/http/helpers"
	"communityroots/internal/domain"
)

// ContactController serves the contact form.
type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

// NewContactController creates a ContactController.
func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// ContactResponse is the success envelope for POST /api/contact.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit godoc
// @Summary Send a contact message
// @Description Forwards the message to the team. Nothing is stored; if the message cannot be delivered the request fails.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body controllers.ContactRequest true "Message"
// @Success 200 {object} controllers.ContactResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 429 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	err := c.Service.Submit(r.Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "contact submission failed", "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to send your message, please try again later")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Thanks for reaching out! We'll get back to you soon.",
	})
}
