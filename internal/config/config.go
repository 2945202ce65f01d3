package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	// BaseURLEnv overrides api.base_url when set.
	BaseURLEnv = "MEETING_API_URL"
)

type Config struct {
	API      APIConfig      `yaml:"api"`
	Paths    PathsConfig    `yaml:"paths"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each outbound request. Zero leaves requests unbounded.
	Timeout time.Duration `yaml:"timeout"`
}

type PathsConfig struct {
	Inbox   string `yaml:"inbox"`
	Reports string `yaml:"reports"`
}

type DispatchConfig struct {
	Auto bool `yaml:"auto"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration usable without any config file.
func Default() Config {
	cfg := Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must be http or https, got %q", c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url has no host: %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}

	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Reports == "" {
		c.Paths.Reports = "data/reports"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
