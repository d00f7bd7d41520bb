package service

import (
	"context"
	"errors"
	"fmt"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

// User serves profile and account operations for an authenticated caller.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

func (s *User) GetProfile(ctx context.Context, userID uint) (model.Profile, error) {
	profile, err := s.userStore.GetProfile(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apiErrors.NewErrUserNotFound()
	}
	if err != nil {
		s.logger.Error("User service: failed to get profile",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (s *User) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apiErrors.NewErrPasswordsRequired()
	}
	if len(newPassword) > model.MaxPasswordBytes {
		return apiErrors.NewErrPasswordTooLong()
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrUserNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if len(currentPassword) > model.MaxPasswordBytes {
		return apiErrors.NewErrInvalidCurrentPassword()
	}

	ok, err := s.hasher.Compare(user.Password, currentPassword)
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	if !ok {
		s.logger.Info("User service: wrong current password",
			"user_id", userID)
		return apiErrors.NewErrInvalidCurrentPassword()
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userStore.UpdatePassword(ctx, userID, hash)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrUserNotFound()
	}
	if err != nil {
		s.logger.Error("User service: failed to update password",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("User service: password updated",
		"user_id", userID)

	return nil
}

// DeleteAccount re-authenticates the caller with email and password and
// removes the account. An email that does not belong to the caller is
// reported the same way as an unknown one.
func (s *User) DeleteAccount(ctx context.Context, identity model.Identity, email, password string) error {
	if email == "" || password == "" {
		return apiErrors.NewErrCredentialsRequired()
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrUserNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.ID != identity.UserID {
		s.logger.Warn("User service: delete requested for another account",
			"user_id", identity.UserID)
		return apiErrors.NewErrUserNotFound()
	}

	if len(password) > model.MaxPasswordBytes {
		return apiErrors.NewErrInvalidPassword()
	}

	ok, err := s.hasher.Compare(user.Password, password)
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	if !ok {
		return apiErrors.NewErrInvalidPassword()
	}

	err = s.userStore.Delete(ctx, user.ID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrUserNotFound()
	}
	if err != nil {
		s.logger.Error("User service: failed to delete user",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: account deleted",
		"user_id", user.ID)

	return nil
}
