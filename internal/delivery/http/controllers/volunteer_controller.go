package controllers

import (
	"log/slog"
	"net/http"

	"communityroots/internal/delivery/http/helpers"
	"communityroots/internal/domain"
)

// VolunteerController serves the volunteer application form.
type VolunteerController struct {
	Logger  *slog.Logger
	Service domain.VolunteerService
}

// NewVolunteerController creates a VolunteerController.
func NewVolunteerController(logger *slog.Logger, svc domain.VolunteerService) *VolunteerController {
	return &VolunteerController{
		Logger:  logger,
		Service: svc,
	}
}

// VolunteerRequest is the request body for POST /api/volunteer.
type VolunteerRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=30"`
	Interest     string `json:"interest" validate:"required,max=100"`
	Availability string `json:"availability" validate:"omitempty,max=500"`
	Experience   string `json:"experience" validate:"omitempty,max=2000"`
	Motivation   string `json:"motivation" validate:"required,min=10,max=2000"`
}

// VolunteerResponse is the success envelope for POST /api/volunteer.
type VolunteerResponse struct {
	Success     bool   `json:"success"`
	VolunteerID string `json:"volunteerId"`
}

// Apply godoc
// @Summary Submit a volunteer application
// @Description Stores the application with status pending. Confirmation email and CRM sync are attempted afterwards; their failure does not fail the request.
// @Tags volunteer
// @Accept json
// @Produce json
// @Param body body controllers.VolunteerRequest true "Application"
// @Success 200 {object} controllers.VolunteerResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 429 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/volunteer [post]
func (c *VolunteerController) Apply(w http.ResponseWriter, r *http.Request) {
	var req VolunteerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	v, err := c.Service.Apply(r.Context(), domain.VolunteerInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Interest:     req.Interest,
		Availability: req.Availability,
		Experience:   req.Experience,
		Motivation:   req.Motivation,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "volunteer application failed", "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Application failed, please try again later")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, VolunteerResponse{Success: true, VolunteerID: v.ID})
}
