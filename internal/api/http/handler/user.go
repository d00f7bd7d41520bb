package handler

import (
	"context"
	"net/http"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

// UserService defines profile and account operations.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (model.Profile, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, identity model.Identity, email, password string) error
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type deleteAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User handles HTTP endpoints for the caller's own account.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *User) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *User) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	var req updatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	err := h.userService.UpdatePassword(r.Context(), identity.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

func (h *User) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	var req deleteAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	err := h.userService.DeleteAccount(r.Context(), identity, req.Email, req.Password)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("User handler: account deleted",
		"user_id", identity.UserID)

	writeJSON(w, http.StatusOK, messageResponse{Message: "Account deleted successfully"})
}
