// Package score ranks locations for collection membership using a
// weighted multi-signal relevance score.
package score

import (
	"sort"
	"strings"

	"github.com/tastesaigon/curator/internal/model"
	"github.com/tastesaigon/curator/internal/normalize"
)

// DefaultLimit caps a collection's membership when a rule does not set
// its own limit.
const DefaultLimit = 15

// Signal weights. These are design constants, not per-run tunables.
const (
	categoryWeight = 3
	tagWeight      = 5
	nameHitWeight  = 2
	descHitWeight  = 1
	priceWeight    = 1
)

// Rule describes the matching policy for one collection: weighted
// signals, hard filters, and the result-size limit.
type Rule struct {
	Collection  string
	Categories  []string
	Tags        []string
	Keywords    []string
	PriceRanges []string
	Districts   []string
	MinRating   float64
	MinReviews  int
	Limit       int
}

// Candidate is one scored location. Candidates come back from Rank in
// display order.
type Candidate struct {
	Location model.Location
	Score    int
}

// Rank scores every location against rule and returns the qualifying
// candidates, best first, truncated to the rule's limit.
//
// Hard filters (rating floor, review-count floor, district allow-set)
// disqualify a location outright regardless of score. Among survivors,
// only strictly positive scores qualify. Ordering is score descending,
// then rating descending, then location ID ascending so that ties are
// deterministic.
func Rank(locations []model.Location, categories, tags map[string]model.SlugSet, rule Rule) []Candidate {
	ruleCats := model.NewSlugSet(rule.Categories...)
	ruleTags := model.NewSlugSet(rule.Tags...)
	prices := model.NewSlugSet(rule.PriceRanges...)
	districts := model.NewSlugSet(rule.Districts...)

	keywords := make([]string, 0, len(rule.Keywords))
	for _, kw := range rule.Keywords {
		if n := normalize.Keyword(kw); n != "" {
			keywords = append(keywords, n)
		}
	}

	var scored []Candidate
	for _, loc := range locations {
		if rule.MinRating > 0 && loc.Rating() < rule.MinRating {
			continue
		}
		if rule.MinReviews > 0 && loc.GoogleReviewCount < rule.MinReviews {
			continue
		}
		if len(districts) > 0 && !districts.Has(loc.District) {
			continue
		}

		score := 0
		locCats := categories[loc.ID]
		locTags := tags[loc.ID]
		for slug := range locCats {
			if ruleCats.Has(slug) {
				score += categoryWeight
			}
		}
		for slug := range locTags {
			if ruleTags.Has(slug) {
				score += tagWeight
			}
		}

		name := normalize.Padded(loc.Name)
		desc := normalize.Padded(loc.ReviewSummary)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				score += nameHitWeight
			}
			if strings.Contains(desc, kw) {
				score += descHitWeight
			}
		}

		if len(prices) > 0 && prices.Has(loc.PriceRange) {
			score += priceWeight
		}

		if score > 0 {
			scored = append(scored, Candidate{Location: loc, Score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		ri, rj := scored[i].Location.Rating(), scored[j].Location.Rating()
		if ri != rj {
			return ri > rj
		}
		return scored[i].Location.ID < scored[j].Location.ID
	})

	limit := rule.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
