package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tastesaigon/curator/internal/cli"
	"github.com/tastesaigon/curator/internal/config"
	"github.com/tastesaigon/curator/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run local database migrations",
		Long: `Initialize or update the local SQLite schema. The supabase backend
manages its own schema and ignores this command.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "show current schema version without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStore(store)

	if status {
		version, err := store.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("schema version %d of %d (%s)\n", version, storage.ExpectedSchemaVersion, dbPath)
		return nil
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("database at %s is up to date", dbPath)))
	return nil
}
