package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/todo-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if err = translateError(err); errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if err = translateError(err); errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetProfile never selects the password column.
func (r *UserRepository) GetProfile(ctx context.Context, id uint) (model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id", "email", "name", "created_at").
		Where("id = ?", id).
		Take(&profile).Error
	if err != nil {
		if err = translateError(err); errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, err
		}
		return model.Profile{}, fmt.Errorf("failed to get user profile: %w", err)
	}

	return profile, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	err := r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		if err = translateError(err); errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if res.Error != nil {
		return fmt.Errorf("failed to update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Delete removes the user; todos go with it through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}
