package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tastesaigon/curator/internal/model"
)

// UpsertLocationCategories inserts category assignments additively.
// Existing (location, category) pairs are left untouched, so re-running
// a classification pass never creates duplicate rows and never errors.
func (s *SQLiteStorage) UpsertLocationCategories(ctx context.Context, assignments []model.CategoryAssignment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO location_categories (location_id, category_id)
		VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare assignment insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range assignments {
		if a.LocationID == "" || a.CategoryID == "" {
			return fmt.Errorf("assignment must have location and category IDs (got %+v)", a)
		}
		if _, err := stmt.ExecContext(ctx, a.LocationID, a.CategoryID); err != nil {
			return fmt.Errorf("failed to insert assignment %s→%s: %w", a.LocationID, a.CategoryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assignments: %w", err)
	}

	slog.Debug("upserted category assignments", "count", len(assignments))
	return nil
}

// ReplaceCollectionLocations replaces a collection's membership with
// the given ranked members. The delete and inserts run in a single
// transaction, so a reader never observes the collection half-written.
func (s *SQLiteStorage) ReplaceCollectionLocations(ctx context.Context, collectionID string, members []model.CollectionMember) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(collectionID, "collectionID"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM collection_locations WHERE collection_id = ?`, collectionID); err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", collectionID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO collection_locations (collection_id, location_id, position)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare membership insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range members {
		if m.LocationID == "" {
			return fmt.Errorf("collection member must have a location ID")
		}
		if _, err := stmt.ExecContext(ctx, collectionID, m.LocationID, m.Position); err != nil {
			return fmt.Errorf("failed to insert member %s: %w", m.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit collection %s: %w", collectionID, err)
	}

	slog.Debug("replaced collection membership",
		"collection_id", collectionID, "count", len(members))
	return nil
}

// GetCollectionLocations returns a collection's membership in stored
// position order.
func (s *SQLiteStorage) GetCollectionLocations(ctx context.Context, collectionID string) ([]model.CollectionMember, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(collectionID, "collectionID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT location_id, position
		FROM collection_locations
		WHERE collection_id = ?
		ORDER BY position`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection members: %w", err)
	}
	defer rows.Close()

	var members []model.CollectionMember
	for rows.Next() {
		var m model.CollectionMember
		if err := rows.Scan(&m.LocationID, &m.Position); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}
