package cli

import (
	"fmt"
	"time"

	"github.com/threeonelabs/storebuilder/internal/config"
	"github.com/threeonelabs/storebuilder/internal/enrich"
	"github.com/threeonelabs/storebuilder/internal/store"
)

// openAgentStore builds the configured agent store. The returned closer is
// a no-op for the in-memory driver.
func openAgentStore(cfg config.Config) (store.AgentStore, func() error, error) {
	if cfg.Store.Driver == "memory" {
		log.Info().Msg("using in-memory agent store")
		return store.NewMemoryAgentStore(), func() error { return nil }, nil
	}

	dbPath := cfg.Store.Path
	if dbPath == "" {
		dbPath = paths.Database
	}
	db, err := store.Open(dbPath, log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	log.Info().Str("path", dbPath).Msg("using SQLite agent store")
	return store.NewAgentStore(db), db.Close, nil
}

// buildEnricher constructs the reply enricher when enabled, or returns nil
// so scripted replies pass through untouched.
func buildEnricher(cfg config.Config) (enrich.Enricher, time.Duration) {
	timeout := time.Duration(cfg.Enrich.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = enrich.DefaultTimeout
	}
	if !cfg.Enrich.Enabled {
		return nil, timeout
	}

	enricher, err := enrich.NewOpenAI(cfg.Enrich.APIKey, cfg.Enrich.BaseURL, cfg.Enrich.Model)
	if err != nil {
		log.Warn().Err(err).Msg("enrichment disabled")
		return nil, timeout
	}
	log.Info().Str("model", cfg.Enrich.Model).Msg("reply enrichment enabled")
	return enricher, timeout
}
