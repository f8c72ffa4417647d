package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to mushaf! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Listening port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Translation edition.
	editionPrompt := promptui.Prompt{
		Label:   "Translation edition shown by the translation toggle",
		Default: cfg.TranslationEdition,
	}
	cfg.TranslationEdition, err = editionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("translation edition: %w", err)
	}

	// 3. Reciter.
	reciterPrompt := promptui.Select{
		Label: "Select reciter for audio playback",
		Items: []string{"ar.alafasy", "ar.abdulbasitmurattal", "ar.husary", "ar.minshawi"},
	}
	_, cfg.AudioEdition, err = reciterPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("reciter selection: %w", err)
	}

	// 4. Explanation provider.
	providerPrompt := promptui.Select{
		Label: "Select provider for ayah explanations",
		Items: []string{"google", "openai", "ollama", "disabled"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	if providerStr == "disabled" {
		cfg.Explain.Enabled = false
	} else {
		cfg.Explain.Provider = ProviderType(providerStr)
		cfg.Explain.Model = DefaultModel(cfg.Explain.Provider)
	}

	// 5. Cache backend.
	cachePrompt := promptui.Select{
		Label: "Select cache for Quran API responses",
		Items: []string{string(CacheMemory), string(CacheRedis), string(CacheNone)},
	}
	_, cacheStr, err := cachePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cache selection: %w", err)
	}
	cfg.Cache.Backend = CacheBackend(cacheStr)
	if cfg.Cache.Backend == CacheRedis {
		addrPrompt := promptui.Prompt{
			Label:   "Redis address",
			Default: "localhost:6379",
		}
		cfg.Cache.RedisAddr, err = addrPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("redis address: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Check for API key.
	if cfg.Explain.Enabled {
		if envVar := APIKeyEnvVar(cfg.Explain.Provider); envVar != "" && os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment (or .env) before running mushaf server.\n", envVar)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
