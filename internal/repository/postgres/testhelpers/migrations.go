package testhelpers

import (
	"context"

	"github.com/inspection-map/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
)

// ApplyMigrations runs the service migrator against the test database
func ApplyMigrations(db *sqlx.DB, migrationsPath string) error {
	_, err := postgres.NewDBForTest(db, nil).Migrate(context.Background(), migrationsPath)
	return err
}
