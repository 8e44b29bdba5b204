package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastesaigon/curator/internal/classify"
	"github.com/tastesaigon/curator/internal/cli"
	"github.com/tastesaigon/curator/internal/score"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full curation pipeline",
		Long: `Run all three passes in order: primary classification, the patch
pass over whatever the primary table missed, then collection
population. Equivalent to running categories, patch, and
collections back to back against the same store.`,
		RunE: runAll,
	}

	cmd.Flags().Bool("dry-run", false, "run every pass without writing")

	return cmd
}

func runAll(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	store, err := initStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer closeStore(store)

	eng := newEngine(store)
	if dryRun {
		eng = newDryRunEngine(store)
	}

	fmt.Println(cli.FormatTitle("Pass 1: primary classification"))
	first, err := eng.AssignCategories(ctx, classify.DefaultRules(), true)
	if err != nil {
		return fmt.Errorf("primary classification failed: %w", err)
	}
	fmt.Println(cli.RenderSummary(first.String()))

	fmt.Println(cli.FormatTitle("Pass 2: patch classification"))
	second, err := eng.AssignCategories(ctx, classify.PatchRules(), true)
	if err != nil {
		return fmt.Errorf("patch classification failed: %w", err)
	}
	fmt.Println(cli.RenderSummary(second.String()))

	fmt.Println(cli.FormatTitle("Pass 3: collection population"))
	colls, err := eng.PopulateCollections(ctx, score.DefaultRules())
	if err != nil {
		return fmt.Errorf("collection population failed: %w", err)
	}
	fmt.Println(cli.RenderSummary(colls.String()))

	if dryRun {
		fmt.Println(cli.FormatWarning("dry run: nothing was written"))
	}

	failures := first.FailedChunks + second.FailedChunks + len(colls.Failed)
	if failures > 0 {
		return fmt.Errorf("pipeline finished with %d write failures", failures)
	}
	fmt.Println(cli.FormatSuccess("pipeline complete"))
	return nil
}
