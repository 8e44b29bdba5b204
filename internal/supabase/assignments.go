package supabase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tastesaigon/curator/internal/model"
)

type assignmentRow struct {
	LocationID string `json:"location_id"`
	CategoryID string `json:"category_id"`
}

// UpsertLocationCategories inserts category assignments with
// merge-duplicates resolution, so existing pairs are silently kept.
func (c *Client) UpsertLocationCategories(ctx context.Context, assignments []model.CategoryAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	rows := make([]assignmentRow, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, assignmentRow{LocationID: a.LocationID, CategoryID: a.CategoryID})
	}

	_, err := c.do(ctx, http.MethodPost, "location_categories", nil, rows,
		"return=minimal,resolution=merge-duplicates")
	if err != nil {
		return fmt.Errorf("failed to upsert %d category links: %w", len(rows), err)
	}
	return nil
}

type memberRow struct {
	CollectionID string `json:"collection_id"`
	LocationID   string `json:"location_id"`
	Position     int    `json:"position"`
}

// ReplaceCollectionLocations deletes a collection's membership and
// inserts the new ranked members in bounded chunks with a fixed pause
// between posts.
//
// PostgREST offers no transaction across the delete and the inserts;
// a run interrupted in between leaves the collection partially
// populated until the next run. Known gap, inherent to the store.
func (c *Client) ReplaceCollectionLocations(ctx context.Context, collectionID string, members []model.CollectionMember) error {
	params := url.Values{}
	params.Set("collection_id", "eq."+collectionID)
	if _, err := c.do(ctx, http.MethodDelete, "collection_locations", params, nil, "return=minimal"); err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", collectionID, err)
	}

	for start := 0; start < len(members); start += c.chunkSize {
		end := start + c.chunkSize
		if end > len(members) {
			end = len(members)
		}

		rows := make([]memberRow, 0, end-start)
		for _, m := range members[start:end] {
			rows = append(rows, memberRow{
				CollectionID: collectionID,
				LocationID:   m.LocationID,
				Position:     m.Position,
			})
		}

		if _, err := c.do(ctx, http.MethodPost, "collection_locations", nil, rows, "return=minimal"); err != nil {
			return fmt.Errorf("failed to insert members %d-%d of collection %s: %w",
				start, end, collectionID, err)
		}

		if end < len(members) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.chunkDelay):
			}
		}
	}

	slog.Debug("replaced collection membership",
		"collection_id", collectionID, "count", len(members))
	return nil
}

// SaveCategories upserts the category taxonomy by slug.
func (c *Client) SaveCategories(ctx context.Context, categories []model.Category) error {
	rows := make([]map[string]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, map[string]string{"name": cat.Name, "slug": cat.Slug})
	}
	params := url.Values{}
	params.Set("on_conflict", "slug")
	if _, err := c.do(ctx, http.MethodPost, "categories", params, rows,
		"return=minimal,resolution=merge-duplicates"); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}

// SaveTags upserts the tag taxonomy by slug.
func (c *Client) SaveTags(ctx context.Context, tags []model.Tag) error {
	rows := make([]map[string]string, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, map[string]string{"name": tag.Name, "slug": tag.Slug})
	}
	params := url.Values{}
	params.Set("on_conflict", "slug")
	if _, err := c.do(ctx, http.MethodPost, "tags", params, rows,
		"return=minimal,resolution=merge-duplicates"); err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}
	return nil
}

// SaveCollections upserts collection metadata by slug.
func (c *Client) SaveCollections(ctx context.Context, collections []model.Collection) error {
	rows := make([]map[string]string, 0, len(collections))
	for _, coll := range collections {
		status := coll.Status
		if status == "" {
			status = "published"
		}
		rows = append(rows, map[string]string{
			"title":       coll.Title,
			"slug":        coll.Slug,
			"description": coll.Description,
			"mood":        coll.Mood,
			"emoji":       coll.Emoji,
			"status":      status,
			"source":      "manual",
		})
	}
	params := url.Values{}
	params.Set("on_conflict", "slug")
	if _, err := c.do(ctx, http.MethodPost, "collections", params, rows,
		"return=minimal,resolution=merge-duplicates"); err != nil {
		return fmt.Errorf("failed to seed collections: %w", err)
	}
	return nil
}
