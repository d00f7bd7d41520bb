package model

import (
	"context"
	"time"
)

// TodoStore defines persistence operations for todos. Every method is
// scoped by the owning user id.
type TodoStore interface {
	ListByUser(ctx context.Context, userID uint) ([]Todo, error)
	GetByIDAndUser(ctx context.Context, id, userID uint) (Todo, error)
	Create(ctx context.Context, todo Todo) (Todo, error)
	Update(ctx context.Context, id, userID uint, patch TodoPatch) (Todo, error)
	Delete(ctx context.Context, id, userID uint) error
}

// Todo represents a to-do item owned by a single user.
type Todo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed" gorm:"not null"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTodoParams contains parameters to create a todo.
type CreateTodoParams struct {
	UserID      uint
	Title       string
	Description *string
}

// TodoPatch holds the fields to change; nil fields are left untouched.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
