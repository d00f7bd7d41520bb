package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/todo-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

type TodoRepository struct {
	db *Connection
}

func NewTodoRepository(db *Connection) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID uint) ([]model.Todo, error) {
	todos := make([]model.Todo, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) GetByIDAndUser(ctx context.Context, id, userID uint) (model.Todo, error) {
	var todo model.Todo
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error
	if err != nil {
		if err = translateError(err); errors.Is(err, model.ErrNotFound) {
			return model.Todo{}, err
		}
		return model.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	if err := r.db.WithContext(ctx).Create(&todo).Error; err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// Update applies the non-nil fields of patch to the caller's todo and
// returns the stored row.
func (r *TodoRepository) Update(ctx context.Context, id, userID uint, patch model.TodoPatch) (model.Todo, error) {
	changes := make(map[string]interface{}, 3)
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Completed != nil {
		changes["completed"] = *patch.Completed
	}

	if len(changes) > 0 {
		res := r.db.WithContext(ctx).
			Model(&model.Todo{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(changes)
		if res.Error != nil {
			return model.Todo{}, fmt.Errorf("failed to update todo: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return model.Todo{}, model.ErrNotFound
		}
	}

	return r.GetByIDAndUser(ctx, id, userID)
}

func (r *TodoRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Todo{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}
