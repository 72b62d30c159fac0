package store

import (
	"github.com/MKhiriev/go-user-service/migrations"
)

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	db.logger.Info().Str("func", "*DB.Migrate").Msg("applying migrations")
	return migrations.Migrate(db.DB)
}
