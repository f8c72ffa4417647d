package config

import "time"

// ProviderType identifies an LLM provider used for ayah explanations.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// CacheBackend selects where upstream API responses are cached.
type CacheBackend string

const (
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
	CacheNone   CacheBackend = "none"
)

// Config is the top-level mushaf configuration, corresponding to .mushaf.yml.
type Config struct {
	Port               int           `yaml:"port" koanf:"port"`
	APIBaseURL         string        `yaml:"api_base_url" koanf:"api_base_url"`
	RequestTimeout     time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	AudioBaseURL       string        `yaml:"audio_base_url" koanf:"audio_base_url"`
	AudioBitrate       int           `yaml:"audio_bitrate" koanf:"audio_bitrate"`
	AudioEdition       string        `yaml:"audio_edition" koanf:"audio_edition"`
	TranslationEdition string        `yaml:"translation_edition" koanf:"translation_edition"`
	DataDir            string        `yaml:"data_dir" koanf:"data_dir"`
	CORSAllowAll       bool          `yaml:"cors_allow_all" koanf:"cors_allow_all"`
	Cache              CacheConfig   `yaml:"cache" koanf:"cache"`
	Explain            ExplainConfig `yaml:"explain" koanf:"explain"`
}

// CacheConfig holds upstream response cache settings.
type CacheConfig struct {
	Backend       CacheBackend  `yaml:"backend" koanf:"backend"`
	TTL           time.Duration `yaml:"ttl" koanf:"ttl"`
	RedisAddr     string        `yaml:"redis_addr" koanf:"redis_addr"`
	RedisUsername string        `yaml:"redis_username" koanf:"redis_username"`
	RedisPassword string        `yaml:"redis_password" koanf:"redis_password"`
}

// ExplainConfig holds settings for generated ayah explanations.
type ExplainConfig struct {
	Enabled           bool         `yaml:"enabled" koanf:"enabled"`
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}
