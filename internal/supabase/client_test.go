package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastesaigon/curator/internal/common"
	"github.com/tastesaigon/curator/internal/model"
)

// recordedRequest captures what the client sent for later assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Prefer string
	Body   string
}

type fakeSupabase struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func (f *fakeSupabase) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Prefer: r.Header.Get("Prefer"),
		Body:   string(body),
	})
	f.mu.Unlock()
	f.handler(w, r)
}

func (f *fakeSupabase) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func newTestClient(t *testing.T, cfg Config, handler http.HandlerFunc) (*Client, *fakeSupabase) {
	t.Helper()

	fake := &fakeSupabase{handler: handler}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg.URL = srv.URL
	if cfg.ServiceRoleKey == "" {
		cfg.ServiceRoleKey = "test-key"
	}
	if cfg.ChunkDelay == 0 {
		cfg.ChunkDelay = time.Millisecond
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client, fake
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := NewClient(Config{ServiceRoleKey: "key"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = NewClient(Config{URL: "https://example.supabase.co"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestAuthHeaders(t *testing.T) {
	var gotAPIKey, gotAuth string
	client, _ := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, "[]")
	})

	_, err := client.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestGetPublishedLocationsPaginates(t *testing.T) {
	// Three rows at page size two means two requests.
	rows := []map[string]any{
		{"id": 1, "name": "Phở Hòa", "google_rating": 4.5, "status": "published"},
		{"id": 2, "name": "Phở Lệ", "google_rating": nil, "average_rating": 4.1, "status": "published"},
		{"id": "uuid-3", "name": "Cơm Tấm", "status": "published", "created_at": "2024-03-01T09:00:00Z"},
	}

	client, fake := newTestClient(t, Config{PageSize: 2}, func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		end := offset + 2
		if end > len(rows) {
			end = len(rows)
		}
		if offset > len(rows) {
			offset = len(rows)
		}
		_ = json.NewEncoder(w).Encode(rows[offset:end])
	})

	got, err := client.GetPublishedLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Numeric and string IDs both come through as strings.
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "uuid-3", got[2].ID)

	// Null ratings fall back to zero; the site average survives.
	assert.Equal(t, 0.0, got[1].GoogleRating)
	assert.Equal(t, 4.1, got[1].AverageRating)
	assert.Equal(t, 2024, got[2].CreatedAt.Year())

	reqs := fake.recorded()
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs[0].Query, "status=eq.published")
	assert.Contains(t, reqs[0].Query, "offset=0")
	assert.Contains(t, reqs[1].Query, "offset=2")
}

func TestGetCategoryLinksEmbeddedJoin(t *testing.T) {
	client, _ := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"location_id": 1, "categories": {"slug": "pho"}},
			{"location_id": 1, "categories": {"slug": "bun"}},
			{"location_id": 2, "categories": {"slug": "com"}},
			{"location_id": 3, "categories": null}
		]`)
	})

	links, err := client.GetCategoryLinks(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 2, "rows with a null join side are dropped")
	assert.True(t, links["1"].Has("pho"))
	assert.True(t, links["1"].Has("bun"))
	assert.True(t, links["2"].Has("com"))
}

func TestUpsertLocationCategoriesPrefer(t *testing.T) {
	client, fake := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	err := client.UpsertLocationCategories(context.Background(), []model.CategoryAssignment{
		{LocationID: "1", CategoryID: "10"},
	})
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/rest/v1/location_categories", reqs[0].Path)
	assert.Equal(t, "return=minimal,resolution=merge-duplicates", reqs[0].Prefer)
	assert.JSONEq(t, `[{"location_id":"1","category_id":"10"}]`, reqs[0].Body)
}

func TestUpsertLocationCategoriesEmptyIsNoop(t *testing.T) {
	client, fake := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, client.UpsertLocationCategories(context.Background(), nil))
	assert.Empty(t, fake.recorded())
}

func TestRateLimitError(t *testing.T) {
	client, _ := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := client.UpsertLocationCategories(context.Background(), []model.CategoryAssignment{
		{LocationID: "1", CategoryID: "10"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSupabaseRateLimit)
}

func TestServerErrorSurfacesBody(t *testing.T) {
	client, _ := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"duplicate key"}`)
	})

	err := client.UpsertLocationCategories(context.Background(), []model.CategoryAssignment{
		{LocationID: "1", CategoryID: "10"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSupabaseRequest)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestGetPagedRetriesTransientFailure(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `[{"id":1,"name":"Phở","slug":"pho"}]`)
	})
	client.retryOpts.InitialDelay = time.Millisecond

	got, err := client.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, calls)
}

func TestReplaceCollectionLocationsChunks(t *testing.T) {
	client, fake := newTestClient(t, Config{ChunkSize: 2}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	members := []model.CollectionMember{
		{LocationID: "a", Position: 1},
		{LocationID: "b", Position: 2},
		{LocationID: "c", Position: 3},
	}
	require.NoError(t, client.ReplaceCollectionLocations(context.Background(), "coll-1", members))

	reqs := fake.recorded()
	require.Len(t, reqs, 3, "one delete plus two chunked inserts")

	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Contains(t, reqs[0].Query, "collection_id=eq.coll-1")

	assert.Equal(t, http.MethodPost, reqs[1].Method)
	assert.JSONEq(t, `[
		{"collection_id":"coll-1","location_id":"a","position":1},
		{"collection_id":"coll-1","location_id":"b","position":2}
	]`, reqs[1].Body)
	assert.JSONEq(t, `[
		{"collection_id":"coll-1","location_id":"c","position":3}
	]`, reqs[2].Body)
}

func TestSaveCollectionsOnConflict(t *testing.T) {
	client, fake := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	err := client.SaveCollections(context.Background(), []model.Collection{
		{Title: "Bún phở đỉnh cao", Slug: "bun-pho-dinh-cao", Emoji: "🍜"},
	})
	require.NoError(t, err)

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].Query, "on_conflict=slug")
	assert.Equal(t, "return=minimal,resolution=merge-duplicates", reqs[0].Prefer)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(reqs[0].Body), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "manual", rows[0]["source"])
	assert.Equal(t, "published", rows[0]["status"])
}

func TestFlexIDRejectsGarbage(t *testing.T) {
	var id flexID
	err := json.Unmarshal([]byte(`{"not":"an id"}`), &id)
	assert.Error(t, err)
}
