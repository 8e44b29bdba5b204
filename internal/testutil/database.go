// Package testutil provides test helpers for storage-backed tests:
// an in-memory migrated database plus builders for seed data.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/tastesaigon/curator/internal/model"
	"github.com/tastesaigon/curator/internal/storage"
)

// TestDB wraps an in-memory migrated SQLiteStorage for one test.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates an in-memory database, runs migrations, and
// registers cleanup. All seeding goes through the same save paths
// production uses.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return &TestDB{Storage: store, t: t}
}

// SeedTaxonomy saves categories, tags, and collections, failing the
// test on any error.
func (db *TestDB) SeedTaxonomy(categories []model.Category, tags []model.Tag, collections []model.Collection) {
	db.t.Helper()
	ctx := context.Background()

	if len(categories) > 0 {
		if err := db.Storage.SaveCategories(ctx, categories); err != nil {
			db.t.Fatalf("failed to seed categories: %v", err)
		}
	}
	if len(tags) > 0 {
		if err := db.Storage.SaveTags(ctx, tags); err != nil {
			db.t.Fatalf("failed to seed tags: %v", err)
		}
	}
	if len(collections) > 0 {
		if err := db.Storage.SaveCollections(ctx, collections); err != nil {
			db.t.Fatalf("failed to seed collections: %v", err)
		}
	}
}

// SeedLocations saves the given locations, failing the test on error.
func (db *TestDB) SeedLocations(locations []model.Location) {
	db.t.Helper()
	if err := db.Storage.SaveLocations(context.Background(), locations); err != nil {
		db.t.Fatalf("failed to seed locations: %v", err)
	}
}

// MakeLocations builds n published locations named from prefix, with
// sequential IDs ("loc-1", "loc-2", ...).
func MakeLocations(n int, prefix string) []model.Location {
	locations := make([]model.Location, 0, n)
	for i := 1; i <= n; i++ {
		locations = append(locations, model.Location{
			ID:     fmt.Sprintf("loc-%d", i),
			Name:   fmt.Sprintf("%s %d", prefix, i),
			Slug:   fmt.Sprintf("loc-%d", i),
			Status: "published",
		})
	}
	return locations
}
