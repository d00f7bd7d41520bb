package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"

	"github.com/dtroode/todo-server/internal/testutil"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	conn, err := NewConnectionFromDialector(postgres.New(postgres.Config{Conn: sqlDB}), testutil.MakeNoopLogger())
	require.NoError(t, err)

	return conn, mock
}
