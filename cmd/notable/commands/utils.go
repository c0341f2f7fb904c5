// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Config/store setup plus small display helpers
package commands

import (
	"fmt"

	"github.com/harper/notable-facts/internal/config"
	"github.com/harper/notable-facts/internal/storage"
	"github.com/joho/godotenv"
)

// setup loads .env and config, and opens the fact store
func setup() (*config.Config, *storage.Store, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := storage.NewStore(&storage.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening fact store: %w", err)
	}

	return cfg, store, nil
}

// activeProfile returns the --profile flag value, falling back to config
func activeProfile(cfg *config.Config) string {
	if profile != "" {
		return profile
	}
	return cfg.Profile
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
