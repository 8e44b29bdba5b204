package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastesaigon/curator/internal/classify"
	"github.com/tastesaigon/curator/internal/model"
	"github.com/tastesaigon/curator/internal/score"
)

// fakeStore is an in-memory Store that records every write.
type fakeStore struct {
	locations   []model.Location
	categories  []model.Category
	collections []model.Collection
	catLinks    map[string]model.SlugSet
	tagLinks    map[string]model.SlugSet

	upserted     []model.CategoryAssignment
	upsertCalls  int
	replaced     map[string][]model.CollectionMember
	upsertErr    error
	replaceErr   map[string]error
	locationsErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		catLinks: make(map[string]model.SlugSet),
		tagLinks: make(map[string]model.SlugSet),
		replaced: make(map[string][]model.CollectionMember),
	}
}

func (f *fakeStore) GetPublishedLocations(_ context.Context) ([]model.Location, error) {
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locations, nil
}

func (f *fakeStore) GetCategoryLinks(_ context.Context) (map[string]model.SlugSet, error) {
	return f.catLinks, nil
}

func (f *fakeStore) GetTagLinks(_ context.Context) (map[string]model.SlugSet, error) {
	return f.tagLinks, nil
}

func (f *fakeStore) GetCategories(_ context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeStore) GetCollections(_ context.Context) ([]model.Collection, error) {
	return f.collections, nil
}

func (f *fakeStore) UpsertLocationCategories(_ context.Context, assignments []model.CategoryAssignment) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, assignments...)
	return nil
}

func (f *fakeStore) ReplaceCollectionLocations(_ context.Context, collectionID string, members []model.CollectionMember) error {
	if err := f.replaceErr[collectionID]; err != nil {
		return err
	}
	f.replaced[collectionID] = members
	return nil
}

func defaultTestRules() []classify.Rule {
	return []classify.Rule{
		{Category: "pho", Keywords: []string{"phở"}},
		{Category: "com", Keywords: []string{"cơm"}},
	}
}

func TestAssignCategories(t *testing.T) {
	store := newFakeStore()
	store.categories = []model.Category{
		{ID: "cat-pho", Slug: "pho", Name: "Phở"},
		{ID: "cat-com", Slug: "com", Name: "Cơm"},
	}
	store.locations = []model.Location{
		{ID: "1", Name: "Phở Hòa Pasteur"},
		{ID: "2", Name: "Cơm Tấm Ba Ghiền"},
		{ID: "3", Name: "Secret Garden"},
	}

	eng := New(store)
	summary, err := eng.AssignCategories(context.Background(), defaultTestRules(), false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Matched)
	assert.Equal(t, 2, summary.Written)
	assert.Equal(t, []string{"Secret Garden"}, summary.Unmatched)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, map[string]int{"pho": 1, "com": 1}, summary.PerCategory)

	require.Len(t, store.upserted, 2)
	assert.Contains(t, store.upserted, model.CategoryAssignment{LocationID: "1", CategoryID: "cat-pho"})
	assert.Contains(t, store.upserted, model.CategoryAssignment{LocationID: "2", CategoryID: "cat-com"})
}

func TestAssignCategoriesOnlyUnassigned(t *testing.T) {
	store := newFakeStore()
	store.categories = []model.Category{{ID: "cat-pho", Slug: "pho"}}
	store.locations = []model.Location{
		{ID: "1", Name: "Phở Lệ"},
		{ID: "2", Name: "Phở Minh"},
	}
	store.catLinks["1"] = model.NewSlugSet("com")

	eng := New(store)
	summary, err := eng.AssignCategories(context.Background(), defaultTestRules(), true)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Matched)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, "2", store.upserted[0].LocationID)
}

func TestAssignCategoriesEmptyTaxonomy(t *testing.T) {
	store := newFakeStore()
	store.locations = []model.Location{{ID: "1", Name: "Phở Lệ"}}

	eng := New(store)
	_, err := eng.AssignCategories(context.Background(), defaultTestRules(), false)
	require.Error(t, err)
}

func TestAssignCategoriesChunking(t *testing.T) {
	store := newFakeStore()
	store.categories = []model.Category{{ID: "cat-pho", Slug: "pho"}}
	for i := 0; i < 5; i++ {
		store.locations = append(store.locations, model.Location{
			ID:   string(rune('a' + i)),
			Name: "Phở quán",
		})
	}

	eng := NewWithConfig(store, Config{BatchSize: 2})
	summary, err := eng.AssignCategories(context.Background(), defaultTestRules(), false)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Written)
	assert.Equal(t, 3, store.upsertCalls)
}

func TestAssignCategoriesChunkFailureTolerated(t *testing.T) {
	store := newFakeStore()
	store.categories = []model.Category{{ID: "cat-pho", Slug: "pho"}}
	store.locations = []model.Location{{ID: "1", Name: "Phở Lệ"}}
	store.upsertErr = errors.New("boom")

	eng := New(store)
	summary, err := eng.AssignCategories(context.Background(), defaultTestRules(), false)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Written)
	assert.Equal(t, 1, summary.FailedChunks)
}

func TestPopulateCollections(t *testing.T) {
	store := newFakeStore()
	store.locations = []model.Location{
		{ID: "1", Name: "Phở Hòa", GoogleRating: 4.5},
		{ID: "2", Name: "Phở Lệ", GoogleRating: 4.2},
		{ID: "3", Name: "Bánh Mì Huỳnh Hoa", GoogleRating: 4.7},
	}
	store.catLinks["1"] = model.NewSlugSet("pho")
	store.catLinks["2"] = model.NewSlugSet("pho")
	store.catLinks["3"] = model.NewSlugSet("banh-mi")
	store.collections = []model.Collection{
		{ID: "coll-1", Slug: "bun-pho-dinh-cao"},
	}

	rules := []score.Rule{
		{Collection: "bun-pho-dinh-cao", Categories: []string{"pho"}, Limit: 10},
	}

	eng := New(store)
	summary, err := eng.PopulateCollections(context.Background(), rules)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Populated)
	assert.Equal(t, 2, summary.Members)

	members := store.replaced["coll-1"]
	require.Len(t, members, 2)
	// Equal scores fall back to rating, so Phở Hòa ranks first.
	assert.Equal(t, model.CollectionMember{LocationID: "1", Position: 1}, members[0])
	assert.Equal(t, model.CollectionMember{LocationID: "2", Position: 2}, members[1])
}

func TestPopulateCollectionsMissingCollection(t *testing.T) {
	store := newFakeStore()
	store.locations = []model.Location{{ID: "1", Name: "Phở Hòa"}}

	rules := []score.Rule{{Collection: "nonexistent", Categories: []string{"pho"}}}

	eng := New(store)
	summary, err := eng.PopulateCollections(context.Background(), rules)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Populated)
	assert.Equal(t, []string{"nonexistent"}, summary.Missing)
	assert.Empty(t, store.replaced)
}

func TestPopulateCollectionsZeroMatchesKeepsMembership(t *testing.T) {
	store := newFakeStore()
	store.locations = []model.Location{{ID: "1", Name: "Phở Hòa"}}
	store.collections = []model.Collection{{ID: "coll-1", Slug: "sai-gon-healthy"}}

	rules := []score.Rule{
		{Collection: "sai-gon-healthy", Categories: []string{"healthy"}},
	}

	eng := New(store)
	summary, err := eng.PopulateCollections(context.Background(), rules)
	require.NoError(t, err)

	assert.Equal(t, []string{"sai-gon-healthy"}, summary.Empty)
	_, wrote := store.replaced["coll-1"]
	assert.False(t, wrote, "zero-match rule must not touch prior membership")
}

func TestPopulateCollectionsWriteFailureTolerated(t *testing.T) {
	store := newFakeStore()
	store.locations = []model.Location{{ID: "1", Name: "Phở Hòa"}}
	store.catLinks["1"] = model.NewSlugSet("pho")
	store.collections = []model.Collection{
		{ID: "coll-1", Slug: "a"},
		{ID: "coll-2", Slug: "b"},
	}
	store.replaceErr = map[string]error{"coll-1": errors.New("boom")}

	rules := []score.Rule{
		{Collection: "a", Categories: []string{"pho"}},
		{Collection: "b", Categories: []string{"pho"}},
	}

	eng := New(store)
	summary, err := eng.PopulateCollections(context.Background(), rules)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, summary.Failed)
	assert.Equal(t, 1, summary.Populated)
	assert.Contains(t, store.replaced, "coll-2")
}

func TestSummaryStrings(t *testing.T) {
	cs := NewCategorySummary()
	cs.Matched = 2
	cs.Written = 2
	cs.Unmatched = []string{"Secret Garden"}
	cs.PerCategory["pho"] = 2
	out := cs.String()
	assert.Contains(t, out, "Matched:   2")
	assert.Contains(t, out, "Secret Garden")
	assert.Contains(t, out, "pho")

	ls := NewCollectionSummary()
	ls.Populated = 1
	ls.Members = 5
	ls.Empty = []string{"sai-gon-healthy"}
	out = ls.String()
	assert.Contains(t, out, "1 collections, 5 memberships")
	assert.Contains(t, out, "sai-gon-healthy")
}
