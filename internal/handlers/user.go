package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"swipe-travel-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserService is the user surface the handler needs
type UserService interface {
	CreateOrUpdate(ctx context.Context, lineUserID string, displayName, pictureURL *string) (*models.User, error)
	Get(ctx context.Context, lineUserID string) (*models.User, error)
	Stats(ctx context.Context, lineUserID string) (*models.UserStats, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest is the body for POST /api/users
type CreateUserRequest struct {
	LineUserID  string  `json:"line_user_id"`
	DisplayName *string `json:"display_name"`
	PictureURL  *string `json:"picture_url"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.LineUserID == "" {
		respondError(w, "line_user_id is required", http.StatusBadRequest)
		return
	}

	user, err := h.userService.CreateOrUpdate(ctx, req.LineUserID, req.DisplayName, req.PictureURL)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", req.LineUserID).Msg("Failed to create user")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// GetUser handles GET /api/users/{line_user_id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	user, err := h.userService.Get(ctx, lineUserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// GetUserStats handles GET /api/users/{line_user_id}/stats
func (h *UserHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	stats, err := h.userService.Stats(ctx, lineUserID)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", lineUserID).Msg("Failed to get user stats")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
