package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dtroode/todo-server/database"
	"github.com/dtroode/todo-server/internal/logger"
)

// PoolOptions tunes the underlying database/sql pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connection wraps a GORM handle bound to a pgx connection pool.
type Connection struct {
	*gorm.DB
}

// NewConnection applies migrations, then opens a pooled GORM connection.
func NewConnection(ctx context.Context, dsn string, pool PoolOptions, log *logger.Logger) (*Connection, error) {
	if err := database.Migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), newGormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{DB: db}, nil
}

// NewConnectionFromDialector opens a Connection over an arbitrary dialector.
// Migrations are not applied.
func NewConnectionFromDialector(dialector gorm.Dialector, log *logger.Logger) (*Connection, error) {
	db, err := gorm.Open(dialector, newGormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Connection{DB: db}, nil
}

func newGormConfig(log *logger.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:                 NewGormLogger(log, 200*time.Millisecond),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	}
}

func (c *Connection) Close() error {
	if c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.DB == nil {
		return errors.New("connection is nil")
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
