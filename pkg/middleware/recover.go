package middleware

import (
	"net/http"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panicking handler into a 500 envelope and logs the stack
// together with the request id set by Logger.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("Panic recovered",
						zap.Any("panic", rec),
						zap.String("request_id", utils.GetRequestID(r.Context())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					utils.ResponseInternalError(w, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
