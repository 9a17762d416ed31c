package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Wiki     WikiConfig     `yaml:"wiki" json:"wiki" jsonschema:"description=Wikipedia API configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:wikifeed.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// WikiConfig holds Wikipedia API and article loading settings
type WikiConfig struct {
	APIURL       string        `yaml:"api_url" json:"api_url" jsonschema:"default=https://en.wikipedia.org,description=Wikipedia base URL"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent sent to the Wikipedia API"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	DefaultCount int           `yaml:"default_count" json:"default_count" jsonschema:"default=10,minimum=1,description=Articles per load when not requested explicitly"`
	Queries      []string      `yaml:"queries" json:"queries" jsonschema:"description=Search queries to pick from (built-in list if empty)"`

	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"description=Reload current articles periodically (zero loads once on start)"`
}

const (
	defaultListen       = ":8080"
	defaultTimeout      = 30 * time.Second
	defaultBaseURL      = "http://localhost:8080"
	defaultDSN          = "file:wikifeed.db?cache=shared&mode=rwc&_txlock=immediate&_pragma=busy_timeout(5000)"
	defaultAPIURL       = "https://en.wikipedia.org"
	defaultUserAgent    = "Wikifeed/1.0 (https://github.com/umputun/wikifeed)"
	defaultArticleCount = 10
)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema verification is supplementary, warn only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults set, used when no config file given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = defaultListen
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = defaultTimeout
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaultBaseURL
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = defaultDSN
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// wiki
	if c.Wiki.APIURL == "" {
		c.Wiki.APIURL = defaultAPIURL
	}
	if c.Wiki.UserAgent == "" {
		c.Wiki.UserAgent = defaultUserAgent
	}
	if c.Wiki.Timeout == 0 {
		c.Wiki.Timeout = defaultTimeout
	}
	if c.Wiki.DefaultCount == 0 {
		c.Wiki.DefaultCount = defaultArticleCount
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if _, err := url.ParseRequestURI(cfg.Server.BaseURL); err != nil {
		return fmt.Errorf("server.base_url is invalid: %w", err)
	}

	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must be non-negative")
	}

	u, err := url.ParseRequestURI(cfg.Wiki.APIURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("wiki.api_url %q is invalid", cfg.Wiki.APIURL)
	}
	if cfg.Wiki.Timeout < time.Second {
		return fmt.Errorf("wiki timeout must be at least 1 second")
	}
	if cfg.Wiki.DefaultCount < 1 {
		return fmt.Errorf("wiki.default_count must be at least 1")
	}
	if cfg.Wiki.RefreshInterval != 0 && cfg.Wiki.RefreshInterval < time.Minute {
		return fmt.Errorf("wiki.refresh_interval must be zero or at least 1 minute")
	}
	for i, q := range cfg.Wiki.Queries {
		if q == "" {
			return fmt.Errorf("wiki.queries[%d] is empty", i)
		}
	}

	return nil
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetWriteTimeout returns response write deadline. An article load runs a search and a summary
// lookup in sequence per chain, each bounded by the wiki timeout, and the server timeout covers the rest.
func (c *Config) GetWriteTimeout() time.Duration {
	return 2*c.Wiki.Timeout + c.Server.Timeout
}

// GetBaseURL returns external base URL used in generated feeds
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
