package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope for every non-2xx body
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes data as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

func responseError(w http.ResponseWriter, code int, message string, errors any) {
	ResponseJSON(w, code, ErrorResponse{
		Status:  false,
		Message: message,
		Errors:  errors,
	})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	responseError(w, http.StatusBadRequest, message, errors)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	responseError(w, http.StatusUnauthorized, message, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	responseError(w, http.StatusForbidden, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	responseError(w, http.StatusNotFound, message, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	responseError(w, http.StatusConflict, message, nil)
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	responseError(w, http.StatusTooManyRequests, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	responseError(w, http.StatusInternalServerError, message, nil)
}
