package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MUSHAF_"

// DotEnvFile is the dotenv file loaded into the process environment, if present.
const DotEnvFile = ".env"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MUSHAF_*). Variables from a .env file in
// the working directory are visible to the overlay but never replace
// variables already set in the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	// Overlay environment variables: MUSHAF_PORT -> port, MUSHAF_CACHE__TTL -> cache.ttl.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Explain.Model == "" {
		cfg.Explain.Model = DefaultModel(cfg.Explain.Provider)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("accessing %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderGoogle: true,
	ProviderOpenAI: true,
	ProviderOllama: true,
}

// validCacheBackends is the set of recognized cache backends.
var validCacheBackends = map[CacheBackend]bool{
	CacheMemory: true,
	CacheRedis:  true,
	CacheNone:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if err := validateURL("api_base_url", c.APIBaseURL); err != nil {
		return err
	}
	if err := validateURL("audio_base_url", c.AudioBaseURL); err != nil {
		return err
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}
	if c.AudioBitrate <= 0 {
		return fmt.Errorf("audio_bitrate must be positive")
	}
	if c.AudioEdition == "" {
		return fmt.Errorf("audio_edition is required")
	}
	if c.TranslationEdition == "" {
		return fmt.Errorf("translation_edition is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("invalid cache.backend %q: must be one of memory, redis, none", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative")
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache.redis_addr is required for the redis backend")
	}

	if c.Explain.Enabled {
		if !validProviders[c.Explain.Provider] {
			return fmt.Errorf("invalid explain.provider %q: must be one of google, openai, ollama", c.Explain.Provider)
		}
		if c.Explain.Model == "" {
			return fmt.Errorf("explain.model is required")
		}
	}
	if c.Explain.RequestsPerMinute < 0 {
		return fmt.Errorf("explain.requests_per_minute must be non-negative")
	}

	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid %s %q", key, raw)
	}
	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGoogle:
		return "GOOGLE_API_KEY"
	default:
		return ""
	}
}
