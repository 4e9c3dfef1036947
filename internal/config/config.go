// Package config loads the pr-copilot YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the configuration lives inside a repository.
const DefaultPath = ".github/pr-copilot-config.yml"

type Config struct {
	ReviewHandling ReviewHandling `yaml:"review_handling"`
	Report         ReportSettings `yaml:"report"`
}

// ReviewHandling controls the actionability filter.
type ReviewHandling struct {
	ActionableKeywords []string `yaml:"actionable_keywords"`
}

// ReportSettings controls optional report bookkeeping.
type ReportSettings struct {
	// HistoryDatabaseURL enables the run history store when set.
	// The DATABASE_URL environment variable takes precedence.
	HistoryDatabaseURL string `yaml:"history_database_url"`
}

// defaultConfig returns the documented fallback configuration used when
// no config file is present.
func defaultConfig() *Config {
	return &Config{
		ReviewHandling: ReviewHandling{
			ActionableKeywords: []string{
				"please",
				"should",
				"could you",
				"nit",
				"typo",
				"fix",
				"refactor",
				"change",
				"update",
				"add",
				"remove",
			},
		},
	}
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath)
}

// LoadFrom reads the configuration from path. A missing file yields the
// defaults; an unreadable or invalid file is a configuration error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	mergeWithDefaults(&cfg)
	return &cfg, nil
}

// mergeWithDefaults fills gaps in a partial config. An empty keyword list
// would make every comment non-actionable, so it falls back to the
// defaults too.
func mergeWithDefaults(cfg *Config) {
	defaults := defaultConfig()

	if len(cfg.ReviewHandling.ActionableKeywords) == 0 {
		cfg.ReviewHandling.ActionableKeywords = defaults.ReviewHandling.ActionableKeywords
	}
}

// HistoryDatabaseURL resolves the run history database URL, preferring
// the DATABASE_URL environment variable over the config file. Empty means
// history is disabled.
func (c *Config) HistoryDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return c.Report.HistoryDatabaseURL
}
