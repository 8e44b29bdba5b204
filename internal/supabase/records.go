package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/tastesaigon/curator/internal/model"
)

// locationRow mirrors the columns the curator reads from the locations
// table. IDs arrive as either integers or UUID strings depending on the
// table, so they decode through json.Number-friendly RawMessage.
type locationRow struct {
	ID                flexID   `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Address           string   `json:"address"`
	District          string   `json:"district"`
	PriceRange        string   `json:"price_range"`
	GoogleRating      *float64 `json:"google_rating"`
	AverageRating     *float64 `json:"average_rating"`
	GoogleReviewCount *int     `json:"google_review_count"`
	ReviewSummary     string   `json:"google_review_summary"`
	OpeningHours      string   `json:"opening_hours"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"created_at"`
}

// flexID decodes a JSON number or string into its string form.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", string(data))
	}
	*f = flexID(n.String())
	return nil
}

func (r locationRow) toModel() model.Location {
	loc := model.Location{
		ID:            string(r.ID),
		Name:          r.Name,
		Slug:          r.Slug,
		Address:       r.Address,
		District:      r.District,
		PriceRange:    r.PriceRange,
		ReviewSummary: r.ReviewSummary,
		OpeningHours:  r.OpeningHours,
		Status:        r.Status,
	}
	if r.GoogleRating != nil {
		loc.GoogleRating = *r.GoogleRating
	}
	if r.AverageRating != nil {
		loc.AverageRating = *r.AverageRating
	}
	if r.GoogleReviewCount != nil {
		loc.GoogleReviewCount = *r.GoogleReviewCount
	}
	if r.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			loc.CreatedAt = ts
		}
	}
	return loc
}

// GetPublishedLocations fetches every published location, paginated.
func (c *Client) GetPublishedLocations(ctx context.Context) ([]model.Location, error) {
	params := url.Values{}
	params.Set("select", "id,name,slug,address,district,price_range,google_rating,average_rating,google_review_count,google_review_summary,opening_hours,status,created_at")
	params.Set("status", "eq.published")
	params.Set("order", "name")

	rows, err := getPaged[locationRow](ctx, c, "locations", params)
	if err != nil {
		return nil, err
	}

	locations := make([]model.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, row.toModel())
	}
	slog.Debug("fetched published locations", "count", len(locations))
	return locations, nil
}

// linkRow is one embedded-join row from a junction table, e.g.
// {"location_id": 7, "categories": {"slug": "pho"}}.
type linkRow struct {
	LocationID flexID           `json:"location_id"`
	Categories *json.RawMessage `json:"categories"`
	Tags       *json.RawMessage `json:"tags"`
}

type slugRow struct {
	Slug string `json:"slug"`
}

func (r linkRow) slug() string {
	raw := r.Categories
	if raw == nil {
		raw = r.Tags
	}
	if raw == nil {
		return ""
	}
	var s slugRow
	if err := json.Unmarshal(*raw, &s); err != nil {
		return ""
	}
	return s.Slug
}

func (c *Client) linkMap(ctx context.Context, table, embed string) (map[string]model.SlugSet, error) {
	params := url.Values{}
	params.Set("select", "location_id,"+embed+"(slug)")

	rows, err := getPaged[linkRow](ctx, c, table, params)
	if err != nil {
		return nil, err
	}

	links := make(map[string]model.SlugSet)
	for _, row := range rows {
		slug := row.slug()
		if slug == "" || row.LocationID == "" {
			continue
		}
		id := string(row.LocationID)
		set, ok := links[id]
		if !ok {
			set = make(model.SlugSet)
			links[id] = set
		}
		set.Add(slug)
	}
	return links, nil
}

// GetCategoryLinks returns location ID → category slugs.
func (c *Client) GetCategoryLinks(ctx context.Context) (map[string]model.SlugSet, error) {
	return c.linkMap(ctx, "location_categories", "categories")
}

// GetTagLinks returns location ID → tag slugs.
func (c *Client) GetTagLinks(ctx context.Context) (map[string]model.SlugSet, error) {
	return c.linkMap(ctx, "location_tags", "tags")
}

type categoryRow struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GetCategories returns the category taxonomy.
func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	params := url.Values{}
	params.Set("select", "id,name,slug")
	params.Set("order", "id")

	rows, err := getPaged[categoryRow](ctx, c, "categories", params)
	if err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, model.Category{ID: string(row.ID), Name: row.Name, Slug: row.Slug})
	}
	return categories, nil
}

type collectionRow struct {
	ID          flexID `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Mood        string `json:"mood"`
	Emoji       string `json:"emoji"`
	Status      string `json:"status"`
}

// GetCollections returns the collection taxonomy.
func (c *Client) GetCollections(ctx context.Context) ([]model.Collection, error) {
	params := url.Values{}
	params.Set("select", "id,title,slug,description,mood,emoji,status")
	params.Set("order", "id")

	rows, err := getPaged[collectionRow](ctx, c, "collections", params)
	if err != nil {
		return nil, err
	}
	collections := make([]model.Collection, 0, len(rows))
	for _, row := range rows {
		collections = append(collections, model.Collection{
			ID: string(row.ID), Title: row.Title, Slug: row.Slug,
			Description: row.Description, Mood: row.Mood,
			Emoji: row.Emoji, Status: row.Status,
		})
	}
	return collections, nil
}
