package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the
// application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema: locations and taxonomy tables",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS locations (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					slug TEXT,
					address TEXT,
					district TEXT,
					price_range TEXT,
					google_rating REAL,
					average_rating REAL,
					google_review_count INTEGER DEFAULT 0,
					google_review_summary TEXT,
					opening_hours TEXT,
					status TEXT NOT NULL DEFAULT 'published',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_locations_status ON locations(status)`,
				`CREATE INDEX idx_locations_district ON locations(district)`,

				`CREATE TABLE IF NOT EXISTS categories (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					slug TEXT UNIQUE NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS tags (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					slug TEXT UNIQUE NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS collections (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					slug TEXT UNIQUE NOT NULL,
					description TEXT,
					mood TEXT,
					emoji TEXT,
					status TEXT NOT NULL DEFAULT 'published'
				)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("migration 1 failed on %q: %w", q[:40], err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Join tables for assignments",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS location_categories (
					location_id TEXT NOT NULL,
					category_id TEXT NOT NULL,
					PRIMARY KEY (location_id, category_id),
					FOREIGN KEY (location_id) REFERENCES locations(id),
					FOREIGN KEY (category_id) REFERENCES categories(id)
				)`,
				`CREATE TABLE IF NOT EXISTS location_tags (
					location_id TEXT NOT NULL,
					tag_id TEXT NOT NULL,
					PRIMARY KEY (location_id, tag_id),
					FOREIGN KEY (location_id) REFERENCES locations(id),
					FOREIGN KEY (tag_id) REFERENCES tags(id)
				)`,
				`CREATE TABLE IF NOT EXISTS collection_locations (
					collection_id TEXT NOT NULL,
					location_id TEXT NOT NULL,
					position INTEGER NOT NULL DEFAULT 0,
					PRIMARY KEY (collection_id, location_id),
					FOREIGN KEY (collection_id) REFERENCES collections(id),
					FOREIGN KEY (location_id) REFERENCES locations(id)
				)`,
				`CREATE INDEX idx_collection_locations_position
					ON collection_locations(collection_id, position)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("migration 2 failed on %q: %w", q[:40], err)
				}
			}
			return nil
		},
	},
}

// SchemaVersion returns the highest applied migration version, zero
// for a fresh database.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_versions'`).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect schema: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}

	var current sql.NullInt64
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM schema_versions`).Scan(&current); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return int(current.Int64), nil
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current sql.NullInt64
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM schema_versions`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if current.Valid && m.Version <= int(current.Int64) {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Debug("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
