package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const upSuffix = ".up.sql"

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`

// Migrate применяет *.up.sql из dir в порядке имён. Каждая миграция выполняется
// в своей транзакции и записывается в schema_migrations; уже применённые пропускаются.
// Возвращает версии, применённые этим вызовом.
func (db *DB) Migrate(ctx context.Context, dir string) ([]string, error) {
	versions, err := listMigrations(dir)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var done []string
	if err := db.SelectContext(ctx, &done, `SELECT version FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	seen := make(map[string]bool, len(done))
	for _, v := range done {
		seen[v] = true
	}

	applied := make([]string, 0)
	for _, version := range versions {
		if seen[version] {
			continue
		}
		if err := db.applyMigration(ctx, dir, version); err != nil {
			return applied, err
		}
		applied = append(applied, version)
	}

	db.logger.Info("Migrations applied",
		zap.String("dir", dir),
		zap.Strings("applied", applied),
		zap.Int("total", len(versions)))
	return applied, nil
}

func (db *DB) applyMigration(ctx context.Context, dir, version string) error {
	content, err := os.ReadFile(filepath.Join(dir, version+upSuffix))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", version, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("apply migration %s: %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
		return fmt.Errorf("record migration %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", version, err)
	}
	return nil
}

// listMigrations возвращает версии (имена без .up.sql) в порядке применения
func listMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), upSuffix) {
			continue
		}
		versions = append(versions, strings.TrimSuffix(e.Name(), upSuffix))
	}
	sort.Strings(versions)
	return versions, nil
}
