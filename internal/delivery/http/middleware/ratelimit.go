package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"

	"communityroots/internal/ratelimit"
)

// RateLimit rejects requests beyond the limiter's per-IP window with 429
// before any validation or handler logic runs. Every response carries
// X-RateLimit-Remaining so clients can back off before hitting the limit.
func RateLimit(limiter *ratelimit.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ratelimit.ClientIP(r)
		if !limiter.Allow(ip) {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Too many requests, please try again later",
			})
			return
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(ip)))
		next.ServeHTTP(w, r)
	})
}
