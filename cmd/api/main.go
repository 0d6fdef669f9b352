// Package main wires the application together and starts the HTTP server.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"communityroots/config"
	_ "communityroots/docs"
	"communityroots/internal/adapters/cms"
	"communityroots/internal/adapters/crm"
	emailadapter "communityroots/internal/adapters/email"
	httpdelivery "communityroots/internal/delivery/http"
	"communityroots/internal/delivery/http/controllers"
	"communityroots/internal/delivery/http/middleware"
	"communityroots/internal/ratelimit"
	"communityroots/internal/repository/postgres"
	"communityroots/internal/services"
)

// @title Community Roots API
// @version 1.0
// @description Public API for the Community Roots website: events, blog and vlog content, event registration, volunteer applications, contact form, and newsletter sign-up.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}
	cancel()
	logger.Info("connected to database")

	// Adapters
	cmsClient := cms.NewClient(nil, cfg.CMS)
	crmClient := crm.NewClient(nil, cfg.CRM)
	mailer, err := emailadapter.NewMailer(cfg.Email)
	if err != nil {
		logger.Error("failed to configure mailer", "err", err)
		os.Exit(1)
	}
	renderer := emailadapter.NewTemplateRenderer()

	// Repositories
	regRepo := postgres.NewRegistrationRepository(db)
	volRepo := postgres.NewVolunteerRepository(db)
	subRepo := postgres.NewNewsletterRepository(db)

	// Services
	emailSvc := services.NewEmailService(mailer, renderer, cfg.Email.TeamInbox)
	regSvc := services.NewRegistrationService(cmsClient, regRepo, emailSvc, crmClient, logger)
	volSvc := services.NewVolunteerService(volRepo, emailSvc, crmClient, logger)
	contactSvc := services.NewContactService(emailSvc, crmClient, logger)
	newsSvc := services.NewNewsletterService(subRepo, crmClient, logger)

	// Controllers
	eventCtrl := controllers.NewEventController(logger, cmsClient, regSvc)
	contentCtrl := controllers.NewContentController(logger, cmsClient)
	volunteerCtrl := controllers.NewVolunteerController(logger, volSvc)
	contactCtrl := controllers.NewContactController(logger, contactSvc)
	newsletterCtrl := controllers.NewNewsletterController(logger, newsSvc)
	webhookCtrl := controllers.NewWebhookController(logger, volSvc, cfg.WebhookSecret)
	healthCtrl := controllers.NewHealthController(logger,
		controllers.PingerFunc(db.PingContext),
		controllers.PingerFunc(cmsClient.Ping),
	)

	formLimiter := ratelimit.New(cfg.RateLimit.FormLimit, cfg.RateLimit.FormWindow)
	apiLimiter := ratelimit.New(cfg.RateLimit.APILimit, cfg.RateLimit.APIWindow)

	mux := httpdelivery.NewRouter(
		eventCtrl,
		contentCtrl,
		volunteerCtrl,
		contactCtrl,
		newsletterCtrl,
		webhookCtrl,
		healthCtrl,
		formLimiter,
	)

	var handler http.Handler = mux
	handler = middleware.RateLimit(apiLimiter, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.Logging(logger, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
