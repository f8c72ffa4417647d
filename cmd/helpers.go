package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/mushaf/internal/cache"
	"github.com/ziadkadry99/mushaf/internal/config"
	"github.com/ziadkadry99/mushaf/internal/db"
	"github.com/ziadkadry99/mushaf/internal/explain"
	"github.com/ziadkadry99/mushaf/internal/llm"
	"github.com/ziadkadry99/mushaf/internal/quran"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `mushaf init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newCache builds the response cache selected in cfg. The returned close
// function releases any connection and is always safe to call.
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		r, err := cache.NewRedis(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisUsername, cfg.Cache.RedisPassword)
		if err != nil {
			return nil, func() {}, fmt.Errorf("connecting to redis cache: %w", err)
		}
		return r, func() { r.Close() }, nil
	case config.CacheNone:
		return cache.Nop{}, func() {}, nil
	default:
		return cache.NewMemory(), func() {}, nil
	}
}

// newQuranClient creates the content API client backed by store.
func newQuranClient(cfg *config.Config, store cache.Cache) *quran.Client {
	return quran.NewClient(cfg.APIBaseURL,
		quran.WithTimeout(cfg.RequestTimeout),
		quran.WithCache(store, cfg.Cache.TTL),
	)
}

// createLLMProviderFromConfig creates the rate-limited explanation provider.
// It returns nil when explanations are disabled.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	if !cfg.Explain.Enabled {
		return nil, nil
	}
	p, err := llm.NewProvider(string(cfg.Explain.Provider), cfg.Explain.Model)
	if err != nil {
		return nil, err
	}
	return llm.NewRateLimitedProvider(p, cfg.Explain.RequestsPerMinute), nil
}

// openExplainer opens the explanation database and wraps provider.
// The returned close function closes the database.
func openExplainer(cfg *config.Config, provider llm.Provider) (*explain.Explainer, func(), error) {
	dbPath := filepath.Join(cfg.DataDir, db.FileName)
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening database: %w", err)
	}
	log.Debug().Str("path", database.Path()).Msg("explanation store opened")
	return explain.New(provider, explain.NewStore(database), cfg.Explain.Model), func() { database.Close() }, nil
}

// setupExplainer builds the explainer for long-running commands. A missing
// provider key only disables explanations; the rest of the reader keeps working.
func setupExplainer(cfg *config.Config) (*explain.Explainer, func(), error) {
	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		log.Warn().Err(err).Str("provider", string(cfg.Explain.Provider)).Msg("explanations disabled")
		return nil, func() {}, nil
	}
	if provider == nil {
		return nil, func() {}, nil
	}
	return openExplainer(cfg, provider)
}
