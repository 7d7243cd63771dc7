// Package db owns the relational store: the gorm connection and the schema migrations.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/personal-finance/tracker/config"
)

const connectTimeout = 5 * time.Second

// Database is the shared gorm handle used by every repository.
type Database struct {
	db *gorm.DB
}

// NewPostgresConnection opens a pooled connection to cfg.URL and fails fast
// when the server cannot be reached.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	level := logger.Silent
	if cfg.LogQueries {
		level = logger.Info
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pool, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	database := &Database{db: gormDB}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		return nil, err
	}

	slog.Info("database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime.String(),
	)

	return database, nil
}

// NewDatabase wraps an already opened gorm connection, e.g. an in-memory SQLite database.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) DB() *gorm.DB {
	return d.db
}

// Ping reports whether the database answers within ctx.
func (d *Database) Ping(ctx context.Context) error {
	pool, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := pool.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	pool, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	slog.Info("database connection closed")
	return nil
}
