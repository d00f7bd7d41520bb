package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uint) (User, error)
	GetProfile(ctx context.Context, id uint) (Profile, error)
	Create(ctx context.Context, user User) (User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	Delete(ctx context.Context, id uint) error
}

// User represents a stored user with authentication material.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      *string   `json:"name"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the public projection of a user.
type Profile struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterParams contains registration input.
type RegisterParams struct {
	Email    string
	Password string
	Name     *string
}

// Session is the result of a successful login.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
