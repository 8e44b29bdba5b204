package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tastesaigon/curator/internal/cli"
	"github.com/tastesaigon/curator/internal/model"
)

// importedLocation is the JSON snapshot row. Tags are editor-assigned
// slugs carried alongside the listing.
type importedLocation struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Address           string   `json:"address"`
	District          string   `json:"district"`
	PriceRange        string   `json:"price_range"`
	ReviewSummary     string   `json:"review_summary"`
	OpeningHours      string   `json:"opening_hours"`
	Status            string   `json:"status"`
	GoogleRating      float64  `json:"google_rating"`
	AverageRating     float64  `json:"average_rating"`
	GoogleReviewCount int      `json:"google_review_count"`
	Tags              []string `json:"tags,omitempty"`
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a location snapshot into the local database",
		Long: `Load a JSON array of location listings into the local SQLite
database. Rows are upserted by ID, so re-importing a newer snapshot
updates listings in place. Tag slugs on a row are linked to the
location when the tag exists in the taxonomy.

Import always targets the local database regardless of the
configured store backend.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var rows []importedLocation
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("snapshot %s contains no locations", args[0])
	}

	store, err := initSQLite(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer closeStore(store)

	locations := make([]model.Location, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" || row.Name == "" {
			return fmt.Errorf("snapshot row missing id or name: %+v", row)
		}
		locations = append(locations, model.Location{
			ID:                row.ID,
			Name:              row.Name,
			Slug:              row.Slug,
			Address:           row.Address,
			District:          row.District,
			PriceRange:        row.PriceRange,
			ReviewSummary:     row.ReviewSummary,
			OpeningHours:      row.OpeningHours,
			Status:            row.Status,
			GoogleRating:      row.GoogleRating,
			AverageRating:     row.AverageRating,
			GoogleReviewCount: row.GoogleReviewCount,
		})
	}

	if err := store.SaveLocations(ctx, locations); err != nil {
		return fmt.Errorf("failed to save locations: %w", err)
	}

	tagged := 0
	for _, row := range rows {
		if len(row.Tags) == 0 {
			continue
		}
		if err := store.SaveLocationTags(ctx, row.ID, row.Tags); err != nil {
			return fmt.Errorf("failed to link tags for %s: %w", row.ID, err)
		}
		tagged++
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"imported %d locations (%d with tags)", len(locations), tagged)))
	return nil
}
