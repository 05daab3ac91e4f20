package middleware

import (
	"net/http"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit sheds requests beyond perSecond (with burst) across all callers of the route
func RateLimit(perSecond float64, burst int, logger *zap.Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("Rate limit exceeded",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
