package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env
// file first if one exists in the working directory.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORTAL_BASE_URL"); v != "" {
		cfg.PortalBaseURL = v
	}
	if v := os.Getenv("PORTAL_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("ONBOARD_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("PORTAL_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
