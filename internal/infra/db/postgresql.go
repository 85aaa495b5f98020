// Package db manages the PostgreSQL connection backing the ledger stores.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/duitku/backend/config"
	"github.com/duitku/backend/internal/integration/persistence/model"
)

// Postgres owns the GORM connection and its pool settings.
type Postgres struct {
	conn *gorm.DB
}

// Connect opens the PostgreSQL connection, tunes the pool from the
// configuration and verifies the server is reachable.
func Connect(cfg *config.DatabaseConfig, environment string) (*Postgres, error) {
	logMode := logger.Silent
	if environment == "development" {
		logMode = logger.Warn
	}

	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Connected to PostgreSQL",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Postgres{conn: conn}, nil
}

// Conn returns the GORM handle for the repositories.
func (p *Postgres) Conn() *gorm.DB {
	return p.conn
}

// Migrate auto-migrates every persisted model.
func (p *Postgres) Migrate() error {
	err := p.conn.AutoMigrate(
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
		&model.ReceivableModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	sqlDB, err := p.conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}
