package main

import (
	"context"

	"github.com/tastesaigon/curator/internal/engine"
	"github.com/tastesaigon/curator/internal/model"
)

// dryRunStore reads from the real store but swallows every write, so
// dry runs report exactly what a live run would do.
type dryRunStore struct {
	engine.Store
}

func (dryRunStore) UpsertLocationCategories(_ context.Context, _ []model.CategoryAssignment) error {
	return nil
}

func (dryRunStore) ReplaceCollectionLocations(_ context.Context, _ string, _ []model.CollectionMember) error {
	return nil
}

func newDryRunEngine(store engine.Store) *engine.Engine {
	return newEngine(dryRunStore{Store: store})
}
