package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastesaigon/curator/internal/classify"
	"github.com/tastesaigon/curator/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Assign cuisine categories to published locations",
		Long: `Classify every published location name against the primary keyword
table and write the resulting category links. Matching is
first-match-wins over the rule list, so more specific cuisines
(bánh mì, phở) win over catch-alls (nhà hàng).

Locations that already carry a category are left untouched unless
--all is given.`,
		RunE: runCategories,
	}

	cmd.Flags().Bool("all", false, "classify every location, not just uncategorized ones")
	cmd.Flags().Bool("dry-run", false, "classify and report without writing")

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	all, _ := cmd.Flags().GetBool("all")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return classifyWithRules(cmd.Context(), classify.DefaultRules(), !all, dryRun)
}

// classifyWithRules runs one classification pass and prints the summary.
// Shared by the categories and patch commands.
func classifyWithRules(ctx context.Context, rules []classify.Rule, onlyUnassigned, dryRun bool) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout())
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

	summary, err := eng.AssignCategories(ctx, rules, onlyUnassigned)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	fmt.Println(cli.FormatTitle("Category assignment"))
	fmt.Println(cli.RenderSummary(summary.String()))
	if dryRun {
		fmt.Println(cli.FormatWarning("dry run: nothing was written"))
	}
	if summary.FailedChunks > 0 {
		return fmt.Errorf("%d write chunks failed", summary.FailedChunks)
	}
	return nil
}
