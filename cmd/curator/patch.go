package main

import (
	"github.com/spf13/cobra"

	"github.com/tastesaigon/curator/internal/classify"
)

func patchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Re-classify uncategorized locations with the extended keyword table",
		Long: `Run a second classification pass over locations the primary table
missed, using a broader keyword set (regional dishes, generic venue
words, drink and dessert vocabulary). Already-categorized locations
are never touched.`,
		RunE: runPatch,
	}

	cmd.Flags().Bool("dry-run", false, "classify and report without writing")

	return cmd
}

func runPatch(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return classifyWithRules(cmd.Context(), classify.PatchRules(), true, dryRun)
}
