package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/finseed/finseed/internal/handler/dto"
	"github.com/finseed/finseed/internal/model"
	"github.com/finseed/finseed/internal/repository"
)

// UserStore is the slice of the repository the user handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	store  UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		store:  store,
		logger: logger,
	}
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_EMAIL", "Email is required")
		return
	}

	user := &model.User{
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			h.writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email already exists")
			return
		}
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("user_created",
		"user_id", user.ID,
		"email", user.Email,
	)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// writeError writes an error response.
func (h *UserHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
