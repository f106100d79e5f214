package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ethan273/limn-systems-enterprise-sub010/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection creates a database connection based on settings.
// Supports both production targets (postgres) and test environments (sqlite).
func NewDBConnection(settings *config.DatabaseSettings) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch settings.Type {
	case config.PostgresDbType:
		db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return db, nil
	case config.SqliteDbType:
		dsn := settings.DSN
		if dsn == "" {
			dsn = ":memory:"
		}
		db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// AcquireConn reserves a single connection from the pool. The migration
// runner executes all statements of a run on this one connection, in order.
func AcquireConn(ctx context.Context, db *gorm.DB) (*sql.Conn, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	return conn, nil
}

// CloseDB closes the database connection.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
