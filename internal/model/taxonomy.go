package model

// Category is a single-label taxonomy entry (one cuisine type). A
// location carries at most one category, assigned by keyword matching.
type Category struct {
	ID   string
	Name string
	Slug string
}

// Tag is a free-form attribute applied to locations by editors
// (features, dietary, cuisine origin). Tags feed the collection scorer
// as a weighted signal; they are never assigned by this tool.
type Tag struct {
	ID   string
	Name string
	Slug string
}

// Collection is a themed, multi-membership grouping of locations
// produced by weighted scoring and ranking.
type Collection struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Mood        string
	Emoji       string
	Status      string
}

// SlugSet is a set of taxonomy slugs keyed for O(1) overlap checks.
type SlugSet map[string]struct{}

// NewSlugSet builds a set from the given slugs.
func NewSlugSet(slugs ...string) SlugSet {
	s := make(SlugSet, len(slugs))
	for _, slug := range slugs {
		s.Add(slug)
	}
	return s
}

// Add inserts a slug into the set.
func (s SlugSet) Add(slug string) {
	s[slug] = struct{}{}
}

// Has reports whether the set contains slug.
func (s SlugSet) Has(slug string) bool {
	_, ok := s[slug]
	return ok
}
