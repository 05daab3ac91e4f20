package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-reviews/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		err  error
		code int
		body string
	}{
		{usecase.ErrMovieNotFound, http.StatusNotFound, `{"status":false,"message":"Movie not found"}`},
		{fmt.Errorf("get: %w", usecase.ErrUserNotFound), http.StatusNotFound, `{"status":false,"message":"Get: user not found"}`},
		{usecase.ErrUsernameTaken, http.StatusConflict, `{"status":false,"message":"Username already exists"}`},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized, `{"status":false,"message":"Invalid username or password"}`},
		{fmt.Errorf("%w: title", usecase.ErrInvalidInput), http.StatusBadRequest, `{"status":false,"message":"invalid input: title"}`},
		{errors.New("connection reset"), http.StatusInternalServerError, `{"status":false,"message":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
