package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apiErrors "github.com/dtroode/todo-server/internal/errors"
	"github.com/dtroode/todo-server/internal/logger"
	"github.com/dtroode/todo-server/internal/model"
)

// TodoIDParam is the route parameter holding the todo id.
const TodoIDParam = "id"

// TodoService defines todo operations scoped to a user.
type TodoService interface {
	List(ctx context.Context, userID uint) ([]model.Todo, error)
	Create(ctx context.Context, params model.CreateTodoParams) (model.Todo, error)
	Update(ctx context.Context, id, userID uint, patch model.TodoPatch) (model.Todo, error)
	Delete(ctx context.Context, id, userID uint) error
}

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Todo handles HTTP endpoints for the caller's todos.
type Todo struct {
	todoService    TodoService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, contextManager model.ContextManager, logger *logger.Logger) *Todo {
	return &Todo{
		todoService:    todoService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Todo) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	todos, err := h.todoService.List(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func (h *Todo) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	var req createTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	todo, err := h.todoService.Create(r.Context(), model.CreateTodoParams{
		UserID:      identity.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}

func (h *Todo) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	id, err := parseTodoID(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	var req updateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	todo, err := h.todoService.Update(r.Context(), id, identity.UserID, model.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (h *Todo) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apiErrors.NewErrMissingAuthorizationToken())
		return
	}

	id, err := parseTodoID(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if err := h.todoService.Delete(r.Context(), id, identity.UserID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Todo deleted successfully"})
}

func parseTodoID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, TodoIDParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apiErrors.NewErrInvalidTodoID(raw)
	}

	return uint(id), nil
}
