// Package config assembles runtime settings for the onboarding CLI.
// Sources are layered: built-in defaults, then a JSON file (-c/-config),
// then environment variables, then command-line flags. Later sources
// take precedence.
package config

import "time"

// Config holds runtime settings for the onboarding CLI.
//
// Fields:
//   - PortalBaseURL: scheme://host[:port] of the AMC portal API.
//   - Token: bearer token for the tenant session; when empty the CLI
//     prompts for it interactively.
//   - DatabasePath: path of the local draft-snapshot sqlite file.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	PortalBaseURL  string
	Token          string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.PortalBaseURL = "http://localhost:8080"
	c.DatabasePath = "onboard.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON, environment and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
