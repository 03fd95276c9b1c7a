package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/amcdesk/onboard/internal/flagx"
	"github.com/amcdesk/onboard/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. It relies on
// timex.Duration so files can write "15s" instead of nanoseconds.
type JsonConfig struct {
	PortalBaseURL  string         `json:"portal_base_url"`
	Token          string         `json:"token"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON layer. Only non-zero
// values override; read or decode errors panic since a config file the
// user pointed at explicitly must not be silently ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.PortalBaseURL != "" {
		cfg.PortalBaseURL = jc.PortalBaseURL
	}
	if jc.Token != "" {
		cfg.Token = jc.Token
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
