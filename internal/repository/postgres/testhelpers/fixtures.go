package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

// LoadFixtures loads SQL fixture files in one transaction; a failing file rolls back all of them
func LoadFixtures(ctx context.Context, db *sqlx.DB, fixturesPath string, files ...string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin fixtures: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(fixturesPath, file))
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return tx.Commit()
}
