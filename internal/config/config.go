package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP server
	Port string

	// Store settings
	StoreBackend string // "file" or "sqlite"
	StorePath    string

	// Source settings
	SourcesConfigPath string
	MaxFeedItems      int
	FetchTimeout      time.Duration

	// Enrichment settings
	TargetLang        string
	BackfillLimit     int // cap of article pages fetched per run for image backfill
	TranslateCacheTTL time.Duration

	// Scheduler settings
	RefreshInterval string // cron spec

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		Port:              "8080",
		StoreBackend:      "file",
		StorePath:         "data/news.json",
		SourcesConfigPath: "configs/sources.yaml",
		MaxFeedItems:      30,
		FetchTimeout:      12 * time.Second,
		TargetLang:        "zh-CN",
		BackfillLimit:     10,
		TranslateCacheTTL: 48 * time.Hour,
		RefreshInterval:   "@every 1h",
	}

	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.StoreBackend = getEnvOrDefault("STORE_BACKEND", cfg.StoreBackend)
	cfg.StorePath = getEnvOrDefault("STORE_PATH", cfg.StorePath)
	cfg.SourcesConfigPath = getEnvOrDefault("SOURCES_CONFIG_PATH", cfg.SourcesConfigPath)
	cfg.TargetLang = getEnvOrDefault("TARGET_LANG", cfg.TargetLang)
	cfg.RefreshInterval = getEnvOrDefault("REFRESH_INTERVAL", cfg.RefreshInterval)

	cfg.MaxFeedItems = getEnvIntOrDefault("MAX_FEED_ITEMS", cfg.MaxFeedItems)
	cfg.BackfillLimit = getEnvIntOrDefault("BACKFILL_LIMIT", cfg.BackfillLimit)

	if v := getEnvIntOrDefault("FETCH_TIMEOUT_SEC", 0); v > 0 {
		cfg.FetchTimeout = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("TRANSLATE_CACHE_TTL_HOURS", 0); v > 0 {
		cfg.TranslateCacheTTL = time.Duration(v) * time.Hour
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	// sqlite backend wants a .db path, catch the common mixup early
	if cfg.StoreBackend == "sqlite" && cfg.StorePath == "data/news.json" {
		cfg.StorePath = "data/news.db"
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.StoreBackend != "file" && c.StoreBackend != "sqlite" {
		return fmt.Errorf("STORE_BACKEND must be 'file' or 'sqlite'")
	}
	if c.MaxFeedItems <= 0 {
		return fmt.Errorf("MAX_FEED_ITEMS must be positive")
	}
	if c.FetchTimeout < time.Second {
		return fmt.Errorf("FETCH_TIMEOUT_SEC must be at least 1")
	}
	return nil
}
