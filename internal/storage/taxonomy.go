package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tastesaigon/curator/internal/model"
)

// GetCategories returns the category taxonomy, ordered by slug.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, slug FROM categories ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// GetCollections returns the collection taxonomy, ordered by slug.
func (s *SQLiteStorage) GetCollections(ctx context.Context) ([]model.Collection, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, slug, COALESCE(description, ''),
		       COALESCE(mood, ''), COALESCE(emoji, ''), status
		FROM collections ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var collections []model.Collection
	for rows.Next() {
		var coll model.Collection
		if err := rows.Scan(&coll.ID, &coll.Title, &coll.Slug,
			&coll.Description, &coll.Mood, &coll.Emoji, &coll.Status); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, coll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collections: %w", err)
	}
	return collections, nil
}

// SaveCategories upserts the category taxonomy by slug. Entries without
// an explicit ID get a stable slug-derived one.
func (s *SQLiteStorage) SaveCategories(ctx context.Context, categories []model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for i, cat := range categories {
		if cat.Slug == "" {
			return fmt.Errorf("category %d has no slug", i)
		}
		id := cat.ID
		if id == "" {
			id = "cat-" + cat.Slug
		}
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO categories (id, name, slug) VALUES (?, ?, ?)
			ON CONFLICT(slug) DO UPDATE SET name = excluded.name`,
			id, cat.Name, cat.Slug); err != nil {
			return fmt.Errorf("failed to save category %s: %w", cat.Slug, err)
		}
	}

	slog.Debug("saved categories", "count", len(categories))
	return nil
}

// SaveTags upserts the tag taxonomy by slug.
func (s *SQLiteStorage) SaveTags(ctx context.Context, tags []model.Tag) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for i, tag := range tags {
		if tag.Slug == "" {
			return fmt.Errorf("tag %d has no slug", i)
		}
		id := tag.ID
		if id == "" {
			id = "tag-" + tag.Slug
		}
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO tags (id, name, slug) VALUES (?, ?, ?)
			ON CONFLICT(slug) DO UPDATE SET name = excluded.name`,
			id, tag.Name, tag.Slug); err != nil {
			return fmt.Errorf("failed to save tag %s: %w", tag.Slug, err)
		}
	}

	slog.Debug("saved tags", "count", len(tags))
	return nil
}

// SaveCollections upserts collection metadata by slug.
func (s *SQLiteStorage) SaveCollections(ctx context.Context, collections []model.Collection) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for i, coll := range collections {
		if coll.Slug == "" {
			return fmt.Errorf("collection %d has no slug", i)
		}
		id := coll.ID
		if id == "" {
			// Slug is the natural key; keep IDs stable across re-seeds.
			id = "coll-" + coll.Slug
		}
		status := coll.Status
		if status == "" {
			status = "published"
		}
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO collections (id, title, slug, description, mood, emoji, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(slug) DO UPDATE SET
				title = excluded.title,
				description = excluded.description,
				mood = excluded.mood,
				emoji = excluded.emoji,
				status = excluded.status`,
			id, coll.Title, coll.Slug, coll.Description, coll.Mood, coll.Emoji, status); err != nil {
			return fmt.Errorf("failed to save collection %s: %w", coll.Slug, err)
		}
	}

	slog.Debug("saved collections", "count", len(collections))
	return nil
}
