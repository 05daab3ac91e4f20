package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}
	utils.ResponseSuccess(w, users)
}

// GetUserByID handles GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user by ID")
		return
	}
	utils.ResponseSuccess(w, user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}
	utils.ResponseCreated(w, user)
}

// GetUserComments handles GET /users/{id}/comments
func (h *UserHandler) GetUserComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetUserComments(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user comments")
		return
	}
	utils.ResponseSuccess(w, comments)
}
