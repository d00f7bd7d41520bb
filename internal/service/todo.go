package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

// Todo serves todo operations. Every call is scoped to the owning user.
type Todo struct {
	todoStore model.TodoStore
	logger    *logger.Logger
}

func NewTodo(todoStore model.TodoStore, logger *logger.Logger) *Todo {
	return &Todo{
		todoStore: todoStore,
		logger:    logger,
	}
}

func (s *Todo) List(ctx context.Context, userID uint) ([]model.Todo, error) {
	todos, err := s.todoStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Todo service: failed to list todos",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	if todos == nil {
		todos = []model.Todo{}
	}

	return todos, nil
}

func (s *Todo) Create(ctx context.Context, params model.CreateTodoParams) (model.Todo, error) {
	if params.Title == "" {
		return model.Todo{}, apiErrors.NewErrTitleRequired()
	}

	todo, err := s.todoStore.Create(ctx, model.Todo{
		Title:       params.Title,
		Description: params.Description,
		Completed:   false,
		UserID:      params.UserID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		s.logger.Error("Todo service: failed to create todo",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Debug("Todo service: todo created",
		"user_id", params.UserID,
		"todo_id", todo.ID)

	return todo, nil
}

// Update applies the supplied fields. Empty title or description strings
// count as not supplied.
func (s *Todo) Update(ctx context.Context, id, userID uint, patch model.TodoPatch) (model.Todo, error) {
	if patch.Title != nil && *patch.Title == "" {
		patch.Title = nil
	}
	if patch.Description != nil && *patch.Description == "" {
		patch.Description = nil
	}

	var (
		todo model.Todo
		err  error
	)
	if patch.IsEmpty() {
		todo, err = s.todoStore.GetByIDAndUser(ctx, id, userID)
	} else {
		todo, err = s.todoStore.Update(ctx, id, userID, patch)
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.Todo{}, apiErrors.NewErrTodoNotFound()
	}
	if err != nil {
		s.logger.Error("Todo service: failed to update todo",
			"user_id", userID,
			"todo_id", id,
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

func (s *Todo) Delete(ctx context.Context, id, userID uint) error {
	err := s.todoStore.Delete(ctx, id, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrTodoNotFound()
	}
	if err != nil {
		s.logger.Error("Todo service: failed to delete todo",
			"user_id", userID,
			"todo_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Debug("Todo service: todo deleted",
		"user_id", userID,
		"todo_id", id)

	return nil
}
