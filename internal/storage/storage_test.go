package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastesaigon/curator/internal/model"
	"github.com/tastesaigon/curator/internal/testutil"
)

func seedTaxonomy(t *testing.T, db *testutil.TestDB) {
	t.Helper()
	db.SeedTaxonomy(
		[]model.Category{
			{Name: "Phở", Slug: "pho"},
			{Name: "Cơm", Slug: "com"},
		},
		[]model.Tag{
			{Name: "Ăn sáng", Slug: "an-sang"},
		},
		[]model.Collection{
			{Title: "Bún phở đỉnh cao", Slug: "bun-pho-dinh-cao"},
		},
	)
}

func TestGetPublishedLocations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	db.SeedLocations([]model.Location{
		{ID: "1", Name: "Zappa Kitchen", Status: "published"},
		{ID: "2", Name: "Awesome Pho", Status: "published"},
		{ID: "3", Name: "Hidden Draft", Status: "draft"},
	})

	got, err := db.Storage.GetPublishedLocations(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2, "draft locations must be excluded")
	assert.Equal(t, "Awesome Pho", got[0].Name, "results come back name ordered")
	assert.Equal(t, "Zappa Kitchen", got[1].Name)
}

func TestSaveLocationsUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	db.SeedLocations([]model.Location{
		{ID: "1", Name: "Phở Hòa", GoogleRating: 4.2},
	})
	db.SeedLocations([]model.Location{
		{ID: "1", Name: "Phở Hòa Pasteur", GoogleRating: 4.5},
	})

	got, err := db.Storage.GetPublishedLocations(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "re-import must update in place, not duplicate")
	assert.Equal(t, "Phở Hòa Pasteur", got[0].Name)
	assert.InDelta(t, 4.5, got[0].GoogleRating, 0.001)
}

func TestSaveLocationsRejectsMissingID(t *testing.T) {
	db := testutil.SetupTestDB(t)

	err := db.Storage.SaveLocations(context.Background(), []model.Location{
		{Name: "No ID"},
	})
	require.Error(t, err)
}

func TestUpsertLocationCategoriesIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	seedTaxonomy(t, db)
	db.SeedLocations([]model.Location{{ID: "1", Name: "Phở Hòa"}})

	pair := []model.CategoryAssignment{{LocationID: "1", CategoryID: "cat-pho"}}
	require.NoError(t, db.Storage.UpsertLocationCategories(ctx, pair))
	require.NoError(t, db.Storage.UpsertLocationCategories(ctx, pair))

	links, err := db.Storage.GetCategoryLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.True(t, links["1"].Has("pho"))
	assert.Len(t, links["1"], 1, "repeated upsert must leave a single link")
}

func TestLocationTagLinks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	seedTaxonomy(t, db)
	db.SeedLocations([]model.Location{{ID: "1", Name: "Phở Hòa"}})

	require.NoError(t, db.Storage.SaveLocationTags(ctx, "1", []string{"an-sang", "unknown-tag"}))

	links, err := db.Storage.GetTagLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.True(t, links["1"].Has("an-sang"))
	assert.Len(t, links["1"], 1, "unknown tag slugs are skipped")
}

func TestReplaceCollectionLocations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	seedTaxonomy(t, db)
	db.SeedLocations([]model.Location{
		{ID: "1", Name: "Phở Hòa"},
		{ID: "2", Name: "Phở Lệ"},
		{ID: "3", Name: "Phở Minh"},
	})

	collID := "coll-bun-pho-dinh-cao"

	require.NoError(t, db.Storage.ReplaceCollectionLocations(ctx, collID, []model.CollectionMember{
		{LocationID: "1", Position: 1},
		{LocationID: "2", Position: 2},
	}))

	// A second run fully replaces the previous membership.
	require.NoError(t, db.Storage.ReplaceCollectionLocations(ctx, collID, []model.CollectionMember{
		{LocationID: "3", Position: 1},
		{LocationID: "1", Position: 2},
	}))

	got, err := db.Storage.GetCollectionLocations(ctx, collID)
	require.NoError(t, err)
	require.Len(t, got, 2, "stale members must be gone")
	assert.Equal(t, model.CollectionMember{LocationID: "3", Position: 1}, got[0])
	assert.Equal(t, model.CollectionMember{LocationID: "1", Position: 2}, got[1])
}

func TestSaveTaxonomyUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Storage.SaveCategories(ctx, []model.Category{
		{Name: "Phở", Slug: "pho"},
	}))
	require.NoError(t, db.Storage.SaveCategories(ctx, []model.Category{
		{Name: "Phở & Bún", Slug: "pho"},
	}))

	got, err := db.Storage.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "same slug must update, not duplicate")
	assert.Equal(t, "Phở & Bún", got[0].Name)
	assert.Equal(t, "cat-pho", got[0].ID)
}

func TestSchemaVersion(t *testing.T) {
	db := testutil.SetupTestDB(t)

	version, err := db.Storage.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}
