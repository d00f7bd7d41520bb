//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/todo-server/internal/model"
	repo "github.com/dtroode/todo-server/internal/repository/postgres"
	"github.com/dtroode/todo-server/internal/testutil"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "todo_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/todo_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn, repo.PoolOptions{MaxOpenConns: 4}, testutil.MakeNoopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	users := repo.NewUserRepository(conn)
	todos := repo.NewTodoRepository(conn)

	name := "A"
	owner, err := users.Create(ctx, model.User{Email: "owner@example.com", Name: &name, Password: "hash"})
	require.NoError(t, err)
	require.NotZero(t, owner.ID)

	_, err = users.Create(ctx, model.User{Email: "owner@example.com", Password: "hash"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	other, err := users.Create(ctx, model.User{Email: "other@example.com", Password: "hash"})
	require.NoError(t, err)

	profile, err := users.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, owner.Email, profile.Email)
	require.Equal(t, "A", *profile.Name)

	first, err := todos.Create(ctx, model.Todo{Title: "first", UserID: owner.ID})
	require.NoError(t, err)
	desc := "d"
	second, err := todos.Create(ctx, model.Todo{Title: "second", Description: &desc, UserID: owner.ID})
	require.NoError(t, err)

	list, err := todos.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)

	done := true
	updated, err := todos.Update(ctx, second.ID, owner.ID, model.TodoPatch{Completed: &done})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, "second", updated.Title)
	require.Equal(t, "d", *updated.Description)

	_, err = todos.Update(ctx, first.ID, other.ID, model.TodoPatch{Completed: &done})
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, todos.Delete(ctx, first.ID, other.ID), model.ErrNotFound)

	require.NoError(t, users.UpdatePassword(ctx, owner.ID, "newhash"))
	reloaded, err := users.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "newhash", reloaded.Password)

	require.NoError(t, users.Delete(ctx, owner.ID))
	_, err = todos.GetByIDAndUser(ctx, second.ID, owner.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, conn.Ping(ctx))
}
