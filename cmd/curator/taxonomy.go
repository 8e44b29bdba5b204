package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastesaigon/curator/internal/classify"
	"github.com/tastesaigon/curator/internal/cli"
	"github.com/tastesaigon/curator/internal/score"
)

func taxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Seed the built-in categories, tags, and collections",
		Long: `Upsert the built-in taxonomy into the store: every cuisine category
the classifier can assign, the editor tag vocabulary the scorer
understands, and the themed collection definitions. Existing rows
with the same slug are updated, never duplicated.`,
		RunE: runTaxonomy,
	}

	return cmd
}

func runTaxonomy(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	store, err := initStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer closeStore(store)

	categories := classify.DefaultCategories()
	tags := classify.DefaultTags()
	collections := score.DefaultCollections()

	if err := store.SaveCategories(ctx, categories); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	if err := store.SaveTags(ctx, tags); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}
	if err := store.SaveCollections(ctx, collections); err != nil {
		return fmt.Errorf("failed to save collections: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"seeded %d categories, %d tags, %d collections",
		len(categories), len(tags), len(collections))))
	return nil
}
