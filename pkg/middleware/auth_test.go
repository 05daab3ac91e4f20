package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-reviews/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (int64, string, error) {
	if token == "good" {
		return 7, "Alice", nil
	}
	return 0, "", errors.New("bad token")
}

func TestAuthBearer(t *testing.T) {
	var gotID int64
	var gotName string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotName, _ = utils.GetUsernameFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := AuthBearer(stubVerifier{}, zap.NewNop())(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer bad", http.StatusForbidden},
		{"valid token", "Bearer good", http.StatusNoContent},
		{"lowercase scheme", "bearer good", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/movies", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, "Alice", gotName)
}
