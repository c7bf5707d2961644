package store

import (
	"database/sql"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name it was
// opened with. The driver name selects the migration set and the error
// classification used by the repositories.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies all pending schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
