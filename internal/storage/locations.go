package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tastesaigon/curator/internal/model"
)

// GetPublishedLocations returns every published location, ordered by name.
func (s *SQLiteStorage) GetPublishedLocations(ctx context.Context) ([]model.Location, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, COALESCE(slug, ''), COALESCE(address, ''),
		       COALESCE(district, ''), COALESCE(price_range, ''),
		       COALESCE(google_rating, 0), COALESCE(average_rating, 0),
		       COALESCE(google_review_count, 0),
		       COALESCE(google_review_summary, ''), COALESCE(opening_hours, ''),
		       status, created_at
		FROM locations
		WHERE status = 'published'
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		var loc model.Location
		if err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Slug, &loc.Address,
			&loc.District, &loc.PriceRange,
			&loc.GoogleRating, &loc.AverageRating,
			&loc.GoogleReviewCount,
			&loc.ReviewSummary, &loc.OpeningHours,
			&loc.Status, &loc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	slog.Debug("retrieved published locations", "count", len(locations))
	return locations, nil
}

// SaveLocations inserts or updates location snapshots.
func (s *SQLiteStorage) SaveLocations(ctx context.Context, locations []model.Location) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO locations (
			id, name, slug, address, district, price_range,
			google_rating, average_rating, google_review_count,
			google_review_summary, opening_hours, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			slug = excluded.slug,
			address = excluded.address,
			district = excluded.district,
			price_range = excluded.price_range,
			google_rating = excluded.google_rating,
			average_rating = excluded.average_rating,
			google_review_count = excluded.google_review_count,
			google_review_summary = excluded.google_review_summary,
			opening_hours = excluded.opening_hours,
			status = excluded.status`)
	if err != nil {
		return fmt.Errorf("failed to prepare location insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		if loc.ID == "" || loc.Name == "" {
			return fmt.Errorf("location must have id and name (got id=%q)", loc.ID)
		}
		status := loc.Status
		if status == "" {
			status = "published"
		}
		created := loc.CreatedAt
		var createdArg any = created
		if created.IsZero() {
			createdArg = nil
		}
		if _, err := stmt.ExecContext(ctx,
			loc.ID, loc.Name, loc.Slug, loc.Address, loc.District, loc.PriceRange,
			nullIfZero(loc.GoogleRating), nullIfZero(loc.AverageRating),
			loc.GoogleReviewCount, loc.ReviewSummary, loc.OpeningHours,
			status, createdArg,
		); err != nil {
			return fmt.Errorf("failed to save location %s: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit locations: %w", err)
	}

	slog.Debug("saved locations", "count", len(locations))
	return nil
}

func nullIfZero(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}

// linkMap loads a two-column join table into an ID → slug-set map. The
// join resolves the taxonomy slug so the engine never sees raw IDs.
func (s *SQLiteStorage) linkMap(ctx context.Context, query string) (map[string]model.SlugSet, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := make(map[string]model.SlugSet)
	for rows.Next() {
		var locationID string
		var slug sql.NullString
		if err := rows.Scan(&locationID, &slug); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		if !slug.Valid || slug.String == "" {
			continue
		}
		set, ok := links[locationID]
		if !ok {
			set = make(model.SlugSet)
			links[locationID] = set
		}
		set.Add(slug.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}
	return links, nil
}

// GetCategoryLinks returns location ID → category slugs.
func (s *SQLiteStorage) GetCategoryLinks(ctx context.Context) (map[string]model.SlugSet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.linkMap(ctx, `
		SELECT lc.location_id, c.slug
		FROM location_categories lc
		JOIN categories c ON c.id = lc.category_id`)
}

// GetTagLinks returns location ID → tag slugs.
func (s *SQLiteStorage) GetTagLinks(ctx context.Context) (map[string]model.SlugSet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.linkMap(ctx, `
		SELECT lt.location_id, t.slug
		FROM location_tags lt
		JOIN tags t ON t.id = lt.tag_id`)
}

// SaveLocationTags links locations to tags, ignoring existing pairs.
// Tag links are editorial data; this exists for snapshot imports and tests.
func (s *SQLiteStorage) SaveLocationTags(ctx context.Context, locationID string, tagSlugs []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(locationID, "locationID"); err != nil {
		return err
	}

	for _, slug := range tagSlugs {
		if _, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO location_tags (location_id, tag_id)
			SELECT ?, id FROM tags WHERE slug = ?`, locationID, slug); err != nil {
			return fmt.Errorf("failed to link tag %s: %w", slug, err)
		}
	}
	return nil
}
