package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityroots/internal/delivery/http/helpers"
	"communityroots/internal/domain"
)

// EventController serves the public event catalog and the registration form.
type EventController struct {
	Logger        *slog.Logger
	Catalog       domain.EventCatalog
	Registrations domain.RegistrationService
}

// NewEventController creates an EventController.
func NewEventController(logger *slog.Logger, catalog domain.EventCatalog, registrations domain.RegistrationService) *EventController {
	return &EventController{
		Logger:        logger,
		Catalog:       catalog,
		Registrations: registrations,
	}
}

// EventListResponse is the success envelope for GET /api/events.
type EventListResponse struct {
	Success bool            `json:"success"`
	Events  []*domain.Event `json:"events"`
}

// EventResponse is the success envelope for GET /api/events/{slug}.
type EventResponse struct {
	Success bool          `json:"success"`
	Event   *domain.Event `json:"event"`
}

// RegisterRequest is the request body for POST /api/events/register.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	EventSlug string `json:"eventSlug" validate:"required,max=200"`
}

// RegisterResponse is the success envelope for POST /api/events/register.
type RegisterResponse struct {
	Success        bool   `json:"success"`
	RegistrationID string `json:"registrationId"`
}

// ListEvents godoc
// @Summary List upcoming events
// @Description Returns published events that have not yet started, ascending by start time.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Catalog.PublishedEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list events failed", "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to load events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{Success: true, Events: events})
}

// GetEvent godoc
// @Summary Get one event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	event, err := c.Catalog.EventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "get event failed", "slug", slug, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to load event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Success: true, Event: event})
}

// Register godoc
// @Summary Register for an event
// @Description Registers the attendee, enforcing the event's capacity and one registration per email. Confirmation email and CRM sync are attempted after the registration is stored; their failure does not fail the request.
// @Tags events
// @Accept json
// @Produce json
// @Param body body controllers.RegisterRequest true "Registration"
// @Success 200 {object} controllers.RegisterResponse
// @Failure 400 {object} helpers.ErrorResponse "Validation failed, event full, already registered, or unknown event"
// @Failure 429 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/register [post]
func (c *EventController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Registrations.Register(r.Context(), domain.RegistrationInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		EventSlug: req.EventSlug,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteError(w, http.StatusBadRequest, "Event not found")
		case errors.Is(err, domain.ErrEventFull):
			helpers.WriteError(w, http.StatusBadRequest, "Event is full")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteError(w, http.StatusBadRequest, "You are already registered for this event")
		default:
			c.Logger.ErrorContext(r.Context(), "registration failed", "event_slug", req.EventSlug, "err", err)
			helpers.WriteError(w, http.StatusInternalServerError, "Registration failed, please try again later")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, RegisterResponse{Success: true, RegistrationID: reg.ID})
}
