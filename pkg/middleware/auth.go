package middleware

import (
	"net/http"
	"strings"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier checks a bearer token and returns the user it was issued for
type TokenVerifier interface {
	Verify(token string) (int64, string, error)
}

// AuthBearer rejects requests without a valid bearer token.
// Missing credentials get 401, a token that fails verification gets 403.
func AuthBearer(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, username, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
					zap.String("request_id", utils.GetRequestID(r.Context())))
				utils.ResponseForbidden(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
