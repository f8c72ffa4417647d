package config

import "time"

// defaultModels maps each explanation provider to the model used when none is configured.
var defaultModels = map[ProviderType]string{
	ProviderGoogle: "gemini-2.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
	ProviderOllama: "llama3",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:               3000,
		APIBaseURL:         "https://api.alquran.cloud/v1",
		RequestTimeout:     15 * time.Second,
		AudioBaseURL:       "https://cdn.islamic.network/quran/audio",
		AudioBitrate:       128,
		AudioEdition:       "ar.alafasy",
		TranslationEdition: "ar.muhammadagourelifet",
		DataDir:            ".mushaf",
		CORSAllowAll:       false,
		Cache: CacheConfig{
			Backend: CacheMemory,
			TTL:     24 * time.Hour,
		},
		Explain: ExplainConfig{
			Enabled:           true,
			Provider:          ProviderGoogle,
			Model:             defaultModels[ProviderGoogle],
			RequestsPerMinute: 30,
		},
	}
}

// DefaultModel returns the default explanation model for the given provider.
// Returns the Google default if the provider is unknown.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderGoogle]
}
