package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"communityroots/internal/delivery/http/helpers"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthController reports the API's own status plus the reachability of the
// database and the CMS.
type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
	CMS    Pinger
}

// NewHealthController creates a HealthController.
func NewHealthController(logger *slog.Logger, db, cms Pinger) *HealthController {
	return &HealthController{
		Logger: logger,
		DB:     db,
		CMS:    cms,
	}
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Check godoc
// @Summary Health check
// @Description Returns 200 when the API and its backing services are reachable, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} controllers.HealthResponse
// @Router /api/health [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	services := map[string]string{"api": "up"}
	healthy := true

	if err := c.DB.Ping(ctx); err != nil {
		c.Logger.WarnContext(ctx, "health: database unreachable", "err", err)
		services["db"] = "down"
		healthy = false
	} else {
		services["db"] = "up"
	}

	if err := c.CMS.Ping(ctx); err != nil {
		c.Logger.WarnContext(ctx, "health: cms unreachable", "err", err)
		services["cms"] = "down"
		healthy = false
	} else {
		services["cms"] = "up"
	}

	status := http.StatusOK
	resp := HealthResponse{Status: "ok", Services: services}
	if !healthy {
		status = http.StatusServiceUnavailable
		resp.Status = "degraded"
	}
	helpers.WriteJSON(w, status, resp)
}
