// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/tastesaigon/curator/internal/model"
)

// RecordSource provides the read-side snapshot a run works from. All
// reads must be stable for the duration of one run; implementations
// paginate internally.
type RecordSource interface {
	// GetPublishedLocations returns every published location.
	GetPublishedLocations(ctx context.Context) ([]model.Location, error)
	// GetCategoryLinks returns location ID → category slugs from the
	// location_categories join table.
	GetCategoryLinks(ctx context.Context) (map[string]model.SlugSet, error)
	// GetTagLinks returns location ID → tag slugs from the
	// location_tags join table.
	GetTagLinks(ctx context.Context) (map[string]model.SlugSet, error)
	// GetCategories returns the category taxonomy.
	GetCategories(ctx context.Context) ([]model.Category, error)
	// GetCollections returns the collection taxonomy.
	GetCollections(ctx context.Context) ([]model.Collection, error)
}

// AssignmentSink persists classifier and scorer outputs.
type AssignmentSink interface {
	// UpsertLocationCategories inserts category assignments with
	// merge-on-conflict semantics: re-inserting an existing pair is a
	// no-op, never a duplicate and never an error.
	UpsertLocationCategories(ctx context.Context, assignments []model.CategoryAssignment) error
	// ReplaceCollectionLocations clears a collection's membership and
	// writes the given ranked members in their place.
	ReplaceCollectionLocations(ctx context.Context, collectionID string, members []model.CollectionMember) error
}

// TaxonomyWriter seeds the static taxonomy tables.
type TaxonomyWriter interface {
	SaveCategories(ctx context.Context, categories []model.Category) error
	SaveTags(ctx context.Context, tags []model.Tag) error
	SaveCollections(ctx context.Context, collections []model.Collection) error
}

// Store is the full persistence contract a backend offers the CLI.
type Store interface {
	RecordSource
	AssignmentSink
	TaxonomyWriter
	Close() error
}

// RetryOptions configures retry behavior for external calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
