package model

// CategoryAssignment links a location to its single category. Upserts
// are additive: inserting an existing pair is a no-op, never an error.
type CategoryAssignment struct {
	LocationID string
	CategoryID string
}

// CollectionMember is one ranked entry of a collection's membership.
// Position is the 1-based display ordinal in ranked order.
type CollectionMember struct {
	LocationID string
	Position   int
}
