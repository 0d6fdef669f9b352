package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communityroots/internal/delivery/http/controllers"
	"communityroots/internal/delivery/http/middleware"
	"communityroots/internal/ratelimit"
)

// NewRouter initializes the HTTP router with all application routes. The
// form-submitting POSTs sit behind the stricter form limiter; the general API
// limiter is applied around the whole router by the caller.
func NewRouter(
	events *controllers.EventController,
	content *controllers.ContentController,
	volunteers *controllers.VolunteerController,
	contact *controllers.ContactController,
	newsletter *controllers.NewsletterController,
	webhooks *controllers.WebhookController,
	health *controllers.HealthController,
	formLimiter *ratelimit.Limiter,
) *http.ServeMux {
	mux := http.NewServeMux()

	form := func(h http.HandlerFunc) http.Handler {
		return middleware.RateLimit(formLimiter, h)
	}

	// Content
	mux.HandleFunc("GET /api/events", events.ListEvents)
	mux.HandleFunc("GET /api/events/{slug}", events.GetEvent)
	mux.HandleFunc("GET /api/blog", content.ListPosts)
	mux.HandleFunc("GET /api/blog/{slug}", content.GetPost)
	mux.HandleFunc("GET /api/vlogs", content.ListVlogs)

	// Forms
	mux.Handle("POST /api/events/register", form(events.Register))
	mux.Handle("POST /api/volunteer", form(volunteers.Apply))
	mux.Handle("POST /api/contact", form(contact.Submit))
	mux.HandleFunc("POST /api/newsletter", newsletter.Subscribe)

	// Webhooks
	mux.HandleFunc("POST /api/webhooks/volunteer-approved", webhooks.VolunteerApproved)

	// Ops
	mux.HandleFunc("GET /api/health", health.Check)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
