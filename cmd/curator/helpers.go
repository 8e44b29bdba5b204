package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/tastesaigon/curator/internal/config"
	"github.com/tastesaigon/curator/internal/engine"
	"github.com/tastesaigon/curator/internal/service"
	"github.com/tastesaigon/curator/internal/storage"
	"github.com/tastesaigon/curator/internal/supabase"
)

const defaultDBPath = "$HOME/.local/share/curator/curator.db"

// initStore builds the configured backend. store.backend selects
// "sqlite" (default, local snapshot) or "supabase" (live project).
func initStore(ctx context.Context) (service.Store, error) {
	backend := viper.GetString("store.backend")
	if backend == "" {
		backend = "sqlite"
	}

	switch backend {
	case "sqlite":
		return initSQLite(ctx)
	case "supabase":
		return initSupabase()
	default:
		return nil, fmt.Errorf("unknown store backend %q (want sqlite or supabase)", backend)
	}
}

func initSQLite(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func initSupabase() (*supabase.Client, error) {
	return supabase.NewClient(supabase.Config{
		URL:            viper.GetString("supabase.url"),
		ServiceRoleKey: viper.GetString("supabase.service_role_key"),
		PageSize:       viper.GetInt("supabase.page_size"),
		ChunkSize:      viper.GetInt("supabase.chunk_size"),
		ChunkDelay:     viper.GetDuration("supabase.chunk_delay"),
	})
}

// newEngine wires the store into an engine with write pacing from
// config, showing progress on a terminal run.
func newEngine(store engine.Store) *engine.Engine {
	cfg := engine.DefaultConfig()
	if v := viper.GetInt("engine.batch_size"); v > 0 {
		cfg.BatchSize = v
	}
	if v := viper.GetDuration("engine.chunk_delay"); v > 0 {
		cfg.ChunkDelay = v
	}
	cfg.ShowProgress = !viper.GetBool("engine.quiet")
	return engine.NewWithConfig(store, cfg)
}

// closeStore closes the store, logging is left to callers.
func closeStore(store service.Store) {
	_ = store.Close()
}

// commandTimeout bounds a whole run so a stalled remote call cannot
// hang the CLI forever.
func commandTimeout() time.Duration {
	if v := viper.GetDuration("engine.timeout"); v > 0 {
		return v
	}
	return 10 * time.Minute
}
