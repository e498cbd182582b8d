package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultFetchTimeout = 20 * time.Second
	configPathEnv       = "ARTICLE_METADATA_CONFIG"
	databaseDSNEnv      = "DATABASE_DSN"
	logLevelEnv         = "LOG_LEVEL"
	userAgentEnv        = "FETCH_USER_AGENT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging      LoggingConfig  `yaml:"logging"`
	Fetch        FetchConfig    `yaml:"fetch"`
	Database     DatabaseConfig `yaml:"database"`
	Vocabularies []string       `yaml:"vocabularies"`
	Documents    []string       `yaml:"documents"`
}

// LoggingConfig selects slog level and handler format ("text" or "json").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FetchConfig controls how documents are downloaded.
type FetchConfig struct {
	UserAgent string        `yaml:"userAgent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DatabaseConfig describes Postgres connection details. An empty DSN disables persistence.
type DatabaseConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if fileCfg, err := Parse(raw); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Vocabularies) == 0 {
		cfg.Vocabularies = defaultConfig().Vocabularies
	}

	return cfg
}

// Parse decodes a YAML document without applying defaults.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(userAgentEnv); v != "" {
		c.Fetch.UserAgent = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}
	if override.Fetch.Timeout > 0 {
		base.Fetch.Timeout = override.Fetch.Timeout
	}

	if override.Database.DSN != "" {
		base.Database.DSN = override.Database.DSN
	}
	if override.Database.Table != "" {
		base.Database.Table = override.Database.Table
	}

	if len(override.Vocabularies) > 0 {
		base.Vocabularies = override.Vocabularies
	}
	if len(override.Documents) > 0 {
		base.Documents = override.Documents
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Fetch: FetchConfig{
			UserAgent: "ArticleMetadata/1.0",
			Timeout:   defaultFetchTimeout,
		},
		Database:     DatabaseConfig{DSN: "", Table: "article_metadata"},
		Vocabularies: []string{"schemaorg"},
	}
}
