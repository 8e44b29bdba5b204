package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastesaigon/curator/internal/cli"
	"github.com/tastesaigon/curator/internal/score"
)

func collectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Populate themed collections by weighted scoring",
		Long: `Score every published location against each collection rule and
replace the collection's membership with the ranked result. A rule
that matches nothing leaves its collection's membership as it was.`,
		RunE: runCollections,
	}

	cmd.Flags().StringSlice("only", nil, "restrict the run to these collection slugs")
	cmd.Flags().Bool("dry-run", false, "score and report without writing")

	return cmd
}

func runCollections(cmd *cobra.Command, _ []string) error {
	only, _ := cmd.Flags().GetStringSlice("only")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	rules := score.DefaultRules()
	if len(only) > 0 {
		rules = filterRules(rules, only)
		if len(rules) == 0 {
			return fmt.Errorf("no collection rules match %v", only)
		}
	}

	return populateCollections(cmd.Context(), rules, dryRun)
}

func filterRules(rules []score.Rule, slugs []string) []score.Rule {
	want := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		want[s] = struct{}{}
	}
	var out []score.Rule
	for _, r := range rules {
		if _, ok := want[r.Collection]; ok {
			out = append(out, r)
		}
	}
	return out
}

func populateCollections(ctx context.Context, rules []score.Rule, dryRun bool) error {
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

	summary, err := eng.PopulateCollections(ctx, rules)
	if err != nil {
		return fmt.Errorf("collection population failed: %w", err)
	}

	fmt.Println(cli.FormatTitle("Collection population"))
	fmt.Println(cli.RenderSummary(summary.String()))
	if dryRun {
		fmt.Println(cli.FormatWarning("dry run: nothing was written"))
	}
	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d collections failed to write", len(summary.Failed))
	}
	return nil
}
