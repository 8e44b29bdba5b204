package engine

import (
	"fmt"
	"strings"
)

// CategorySummary reports the outcome of a classification run.
type CategorySummary struct {
	Matched      int
	Skipped      int
	Written      int
	FailedChunks int
	Unmatched    []string
	PerCategory  map[string]int
}

// NewCategorySummary returns an empty summary ready to accumulate.
func NewCategorySummary() *CategorySummary {
	return &CategorySummary{PerCategory: make(map[string]int)}
}

// String renders a plain-text report of the run.
func (s *CategorySummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matched:   %d\n", s.Matched)
	fmt.Fprintf(&b, "Unmatched: %d\n", len(s.Unmatched))
	if s.Skipped > 0 {
		fmt.Fprintf(&b, "Skipped:   %d (already categorized)\n", s.Skipped)
	}
	fmt.Fprintf(&b, "Written:   %d\n", s.Written)
	if s.FailedChunks > 0 {
		fmt.Fprintf(&b, "Failed chunks: %d\n", s.FailedChunks)
	}

	if len(s.PerCategory) > 0 {
		b.WriteString("\nBy category:\n")
		for _, slug := range sortedSlugs(s.PerCategory) {
			fmt.Fprintf(&b, "  %-24s %d\n", slug, s.PerCategory[slug])
		}
	}
	if len(s.Unmatched) > 0 {
		b.WriteString("\nUnmatched names:\n")
		shown := s.Unmatched
		if len(shown) > maxUnmatchedShown {
			shown = shown[:maxUnmatchedShown]
		}
		for _, name := range shown {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		if rest := len(s.Unmatched) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "  ... and %d more\n", rest)
		}
	}
	return b.String()
}

// maxUnmatchedShown caps the unmatched listing in the rendered summary;
// the full set is still available on the struct.
const maxUnmatchedShown = 40

// CollectionSummary reports the outcome of a collection population run.
type CollectionSummary struct {
	Populated     int
	Members       int
	Empty         []string
	Missing       []string
	Failed        []string
	PerCollection map[string]int
}

// NewCollectionSummary returns an empty summary ready to accumulate.
func NewCollectionSummary() *CollectionSummary {
	return &CollectionSummary{PerCollection: make(map[string]int)}
}

// String renders a plain-text report of the run.
func (s *CollectionSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Populated: %d collections, %d memberships\n", s.Populated, s.Members)
	if len(s.Empty) > 0 {
		fmt.Fprintf(&b, "Empty (kept prior membership): %s\n", strings.Join(s.Empty, ", "))
	}
	if len(s.Missing) > 0 {
		fmt.Fprintf(&b, "Missing from taxonomy: %s\n", strings.Join(s.Missing, ", "))
	}
	if len(s.Failed) > 0 {
		fmt.Fprintf(&b, "Write failures: %s\n", strings.Join(s.Failed, ", "))
	}

	if len(s.PerCollection) > 0 {
		b.WriteString("\nBy collection:\n")
		for _, slug := range sortedSlugs(s.PerCollection) {
			fmt.Fprintf(&b, "  %-32s %d\n", slug, s.PerCollection[slug])
		}
	}
	return b.String()
}
