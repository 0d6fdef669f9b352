package controllers

import (
	"log/slog"
	"net/http"

	"communityroots/internal/delivery/http/helpers"
	"communityroots/internal/domain"
)

// NewsletterController serves the newsletter sign-up.
type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.NewsletterService
}

// NewNewsletterController creates a NewsletterController.
func NewNewsletterController(logger *slog.Logger, svc domain.NewsletterService) *NewsletterController {
	return &NewsletterController{
		Logger:  logger,
		Service: svc,
	}
}

// NewsletterRequest is the request body for POST /api/newsletter.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterResponse is the success envelope for POST /api/newsletter.
type NewsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Subscribing an address that is already on the list succeeds and says so; it is never an error.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body controllers.NewsletterRequest true "Subscription"
// @Success 200 {object} controllers.NewsletterResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/newsletter [post]
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	created, err := c.Service.Subscribe(r.Context(), req.Email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "newsletter subscription failed", "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Subscription failed, please try again later")
		return
	}

	message := "Thanks for subscribing!"
	if !created {
		message = "You're already subscribed."
	}
	helpers.WriteJSON(w, http.StatusOK, NewsletterResponse{Success: true, Message: message})
}
