// Package store implements the persistence layer of the traduzo backend.
// It wraps a database/sql connection (PostgreSQL via pgx, or a SQLite file
// for local deployments), runs embedded goose migrations at startup, and
// exposes repositories for users and translation history.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/traduzo/traduzo-backend/internal/config"
	"github.com/traduzo/traduzo-backend/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is the single persistence dependency handed to the service
// layer.
type Storages struct {
	UserRepository        UserRepository
	TranslationRepository TranslationRepository

	db *DB
}

// NewStorages opens the database connection selected by cfg.DB.DSN, applies
// pending migrations, and wires up all repositories.
//
// DSNs with a "postgres://" or "postgresql://" scheme use the pgx driver;
// anything else is treated as a SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		TranslationRepository: NewTranslationRepository(db, log),
		db:                    db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}
