package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the pipeline needs, resolved once at startup.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
	CloneDir    string
	Redact      bool
}

// ErrMissingAPIKey is returned by Load when no API key is configured.
// No network activity may be attempted in that case.
var ErrMissingAPIKey = errors.New("CEREBRAS_API_KEY not set in environment")

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		BaseURL:     "https://api.cerebras.net/v1",
		Model:       "llama3.1-70b",
		MaxTokens:   4000,
		Temperature: 0.4,
		Timeout:     60 * time.Second,
		CloneDir:    "temp_clones",
	}
}

// Load builds the effective config by merging: defaults <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	return cfg, nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("CEREBRAS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CEREBRAS_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CEREBRAS_MODEL_ID"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CEREBRAS_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["baseURL"]; ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["maxTokens"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v, ok := overrides["redact"]; ok && v == "true" {
		cfg.Redact = true
	}
}
