// Package config provides configuration loading for mitsuke.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/hyperjump/mitsuke/internal/ranking"
)

// envPrefix is the prefix for environment overrides, e.g. MITSUKE_SERVER_PORT.
const envPrefix = "mitsuke"

// Config holds all configuration for the application.
type Config struct {
	Debug   bool            `yaml:"debug"`
	Server  ServerConfig    `yaml:"server"`
	Search  SearchConfig    `yaml:"search"`
	Ranking ranking.Weights `yaml:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host" envconfig:"SERVER_HOST"`
	Port int    `yaml:"port" envconfig:"SERVER_PORT"`
}

// SearchConfig holds default search settings. Per-request options
// override these.
type SearchConfig struct {
	MaxResults  int   `yaml:"max_results" envconfig:"SEARCH_MAX_RESULTS"`
	MinScore    int   `yaml:"min_score" envconfig:"SEARCH_MIN_SCORE"`
	MaxFileSize int64 `yaml:"max_file_size" envconfig:"SEARCH_MAX_FILE_SIZE"`
	Workers     int   `yaml:"workers" envconfig:"SEARCH_WORKERS"`
	MaxSnippets int   `yaml:"max_snippets" envconfig:"SEARCH_MAX_SNIPPETS"`
}

// Load reads the config file at path when it exists, applies environment
// overrides, then fills remaining zero values with defaults. A missing
// file is not an error; environment and defaults still apply.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 10
	}
	if cfg.Search.MinScore == 0 {
		cfg.Search.MinScore = 15
	}
	if cfg.Search.MaxFileSize == 0 {
		cfg.Search.MaxFileSize = 1 << 20
	}
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = 8
	}
	if cfg.Search.MaxSnippets == 0 {
		cfg.Search.MaxSnippets = 3
	}
	cfg.Ranking.ApplyDefaults()
}
