package testhelpers

import (
	"github.com/inspection-map/internal/domain/repository"
	"github.com/inspection-map/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewPreferencesRepositoryForTest creates a preferences repository over the test database
func NewPreferencesRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PreferencesRepository {
	return postgres.NewPreferencesRepository(postgres.NewDBForTest(db, logger))
}

// NewDatasetLoadRepositoryForTest creates a dataset load repository over the test database
func NewDatasetLoadRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DatasetLoadRepository {
	return postgres.NewDatasetLoadRepository(postgres.NewDBForTest(db, logger))
}
