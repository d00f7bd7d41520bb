package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dtroode/todo-server/internal/model"
)

type memUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uint]model.User)}
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id uint) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) GetProfile(ctx context.Context, id uint) (model.Profile, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Profile{}, err
	}
	return model.Profile{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}, nil
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.User{}, model.ErrAlreadyExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.Password = passwordHash
	s.users[id] = u
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type memTodoStore struct {
	mu     sync.Mutex
	nextID uint
	todos  map[uint]model.Todo
}

func newMemTodoStore() *memTodoStore {
	return &memTodoStore{todos: make(map[uint]model.Todo)}
}

func (s *memTodoStore) ListByUser(_ context.Context, userID uint) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Todo{}
	for _, td := range s.todos {
		if td.UserID == userID {
			out = append(out, td)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memTodoStore) GetByIDAndUser(_ context.Context, id, userID uint) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.todos[id]
	if !ok || td.UserID != userID {
		return model.Todo{}, model.ErrNotFound
	}
	return td, nil
}

func (s *memTodoStore) Create(_ context.Context, todo model.Todo) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	todo.ID = s.nextID
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now()
	}
	s.todos[todo.ID] = todo
	return todo, nil
}

func (s *memTodoStore) Update(_ context.Context, id, userID uint, patch model.TodoPatch) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.todos[id]
	if !ok || td.UserID != userID {
		return model.Todo{}, model.ErrNotFound
	}
	if patch.Title != nil {
		td.Title = *patch.Title
	}
	if patch.Description != nil {
		td.Description = patch.Description
	}
	if patch.Completed != nil {
		td.Completed = *patch.Completed
	}
	s.todos[id] = td
	return td, nil
}

func (s *memTodoStore) Delete(_ context.Context, id, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.todos[id]
	if !ok || td.UserID != userID {
		return model.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
