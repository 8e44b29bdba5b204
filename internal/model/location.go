// Package model defines the core domain models used throughout the application.
package model

import "time"

// PriceRange tiers, cheapest to most expensive.
var priceRanges = []string{"$", "$$", "$$$", "$$$$"}

// ValidPriceRange reports whether s is one of the known price tiers.
// An unset or unknown tier is not an error; it simply never matches
// a price allow-set.
func ValidPriceRange(s string) bool {
	for _, p := range priceRanges {
		if s == p {
			return true
		}
	}
	return false
}

// Location represents a single published business listing. Locations are
// read-only inputs for a run; assignments are written separately.
type Location struct {
	CreatedAt         time.Time
	ID                string
	Name              string
	Slug              string
	Address           string
	District          string
	PriceRange        string
	ReviewSummary     string
	OpeningHours      string
	Status            string
	GoogleRating      float64
	AverageRating     float64
	GoogleReviewCount int
}

// Rating returns the rating used for filtering and ranking: the Google
// rating when present, the site average otherwise, zero when neither
// is set.
func (l *Location) Rating() float64 {
	if l.GoogleRating > 0 {
		return l.GoogleRating
	}
	if l.AverageRating > 0 {
		return l.AverageRating
	}
	return 0
}
