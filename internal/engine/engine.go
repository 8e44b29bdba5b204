// Package engine orchestrates classification and collection runs over
// an in-memory snapshot of the published locations.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/tastesaigon/curator/internal/classify"
	"github.com/tastesaigon/curator/internal/common"
	"github.com/tastesaigon/curator/internal/model"
	"github.com/tastesaigon/curator/internal/score"
	"github.com/tastesaigon/curator/internal/service"
)

// Store is the slice of the persistence contract the engine needs.
type Store interface {
	service.RecordSource
	service.AssignmentSink
}

// Config holds configuration options for the engine.
type Config struct {
	// BatchSize bounds each category assignment write; ChunkDelay is
	// the fixed pause between writes, to respect downstream rate
	// limits. Neither affects ordering.
	BatchSize  int
	ChunkDelay time.Duration
	// ShowProgress renders a progress bar on chunked writes.
	ShowProgress bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:  200,
		ChunkDelay: 200 * time.Millisecond,
	}
}

// Engine runs classification and collection population against a store.
// All work is sequential: the snapshot loads once, matching runs in
// memory, then assignments are written.
type Engine struct {
	store  Store
	config Config
}

// New creates an engine with the default configuration.
func New(store Store) *Engine {
	return NewWithConfig(store, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(store Store, config Config) *Engine {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultConfig().BatchSize
	}
	return &Engine{store: store, config: config}
}

// AssignCategories classifies every published location name against the
// given rules and persists the resulting (location, category) pairs
// additively. With onlyUnassigned set it skips locations that already
// have a category link, which is how the patch pass honors the
// "classified once, never reclassified" invariant.
//
// A location no rule matches is not an error; its name lands in the
// summary's unmatched list for manual review.
func (e *Engine) AssignCategories(ctx context.Context, rules []classify.Rule, onlyUnassigned bool) (*CategorySummary, error) {
	locations, err := e.store.GetPublishedLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	slog.Info("fetched published locations", "count", len(locations))

	categories, err := e.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, common.ErrEmptyTaxonomy
	}
	categoryIDs := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryIDs[cat.Slug] = cat.ID
	}

	var existing map[string]model.SlugSet
	if onlyUnassigned {
		existing, err = e.store.GetCategoryLinks(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch category links: %w", err)
		}
	}

	classifier := classify.NewClassifier(rules)
	summary := NewCategorySummary()
	var assignments []model.CategoryAssignment
	seen := make(map[model.CategoryAssignment]struct{})

	for _, loc := range locations {
		if onlyUnassigned && len(existing[loc.ID]) > 0 {
			summary.Skipped++
			continue
		}

		slug, ok := classifier.Classify(loc.Name)
		if !ok {
			summary.Unmatched = append(summary.Unmatched, loc.Name)
			continue
		}
		categoryID, known := categoryIDs[slug]
		if !known {
			// Rule points at a category absent from the taxonomy
			// table; treat like a miss and surface the name.
			slog.Warn("rule category missing from taxonomy", "slug", slug, "location", loc.Name)
			summary.Unmatched = append(summary.Unmatched, loc.Name)
			continue
		}

		pair := model.CategoryAssignment{LocationID: loc.ID, CategoryID: categoryID}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		assignments = append(assignments, pair)
		summary.Matched++
		summary.PerCategory[slug]++
	}

	slog.Info("classification finished",
		"matched", summary.Matched,
		"unmatched", len(summary.Unmatched),
		"skipped", summary.Skipped)

	written, failed := e.writeAssignments(ctx, assignments)
	summary.Written = written
	summary.FailedChunks = failed

	return summary, nil
}

// writeAssignments persists category pairs in bounded chunks. A failed
// chunk is logged and counted; the remaining chunks still go out.
func (e *Engine) writeAssignments(ctx context.Context, assignments []model.CategoryAssignment) (written, failedChunks int) {
	if len(assignments) == 0 {
		return 0, 0
	}

	bar := e.newProgressBar(len(assignments), "Writing category assignments")

	for start := 0; start < len(assignments); start += e.config.BatchSize {
		end := start + e.config.BatchSize
		if end > len(assignments) {
			end = len(assignments)
		}
		chunk := assignments[start:end]

		if err := e.store.UpsertLocationCategories(ctx, chunk); err != nil {
			common.LogError(err, "failed to write assignment chunk", common.Fields{
				"offset": start,
				"size":   len(chunk),
			})
			failedChunks++
		} else {
			written += len(chunk)
		}
		if bar != nil {
			_ = bar.Add(len(chunk))
		}

		if end < len(assignments) && e.config.ChunkDelay > 0 {
			select {
			case <-ctx.Done():
				return written, failedChunks
			case <-time.After(e.config.ChunkDelay):
			}
		}
	}
	return written, failedChunks
}

// PopulateCollections scores every rule's collection and fully replaces
// its membership with the ranked result. A rule matching nothing is a
// warning, and its collection keeps its previous membership.
func (e *Engine) PopulateCollections(ctx context.Context, rules []score.Rule) (*CollectionSummary, error) {
	locations, err := e.store.GetPublishedLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	categoryLinks, err := e.store.GetCategoryLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category links: %w", err)
	}
	tagLinks, err := e.store.GetTagLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tag links: %w", err)
	}
	collections, err := e.store.GetCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collections: %w", err)
	}

	bySlug := make(map[string]model.Collection, len(collections))
	for _, coll := range collections {
		bySlug[coll.Slug] = coll
	}

	slog.Info("populating collections",
		"locations", len(locations),
		"category_links", len(categoryLinks),
		"tag_links", len(tagLinks),
		"rules", len(rules))

	summary := NewCollectionSummary()
	bar := e.newProgressBar(len(rules), "Populating collections")

	for _, rule := range rules {
		if bar != nil {
			_ = bar.Add(1)
		}

		coll, ok := bySlug[rule.Collection]
		if !ok {
			slog.Warn("collection not found, skipping", "slug", rule.Collection)
			summary.Missing = append(summary.Missing, rule.Collection)
			continue
		}

		ranked := score.Rank(locations, categoryLinks, tagLinks, rule)
		if len(ranked) == 0 {
			slog.Warn("collection matched zero locations", "slug", rule.Collection)
			summary.Empty = append(summary.Empty, rule.Collection)
			continue
		}

		members := make([]model.CollectionMember, 0, len(ranked))
		for i, cand := range ranked {
			members = append(members, model.CollectionMember{
				LocationID: cand.Location.ID,
				Position:   i + 1,
			})
		}

		if err := e.store.ReplaceCollectionLocations(ctx, coll.ID, members); err != nil {
			common.LogError(err, "failed to replace collection membership", common.Fields{
				"collection": rule.Collection,
				"members":    len(members),
			})
			summary.Failed = append(summary.Failed, rule.Collection)
			continue
		}

		summary.Populated++
		summary.Members += len(members)
		summary.PerCollection[rule.Collection] = len(members)
		slog.Info("collection populated", "slug", rule.Collection, "members", len(members))
	}

	return summary, nil
}

func (e *Engine) newProgressBar(total int, description string) *progressbar.ProgressBar {
	if !e.config.ShowProgress || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}

// sortedSlugs returns map keys in descending count order, then
// alphabetically, for stable summary output.
func sortedSlugs(counts map[string]int) []string {
	slugs := make([]string, 0, len(counts))
	for slug := range counts {
		slugs = append(slugs, slug)
	}
	sort.Slice(slugs, func(i, j int) bool {
		if counts[slugs[i]] != counts[slugs[j]] {
			return counts[slugs[i]] > counts[slugs[j]]
		}
		return slugs[i] < slugs[j]
	})
	return slugs
}
