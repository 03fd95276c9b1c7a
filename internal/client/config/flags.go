package config

import (
	"flag"
	"os"
	"time"

	"github.com/amcdesk/onboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the AMC portal API
//	-t string   bearer token for the tenant session
//	-d string   path of the local snapshot database
//	-i int      request timeout in seconds
//
// Args are filtered with flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.PortalBaseURL, "a", cfg.PortalBaseURL, "base URL of the AMC portal API")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "bearer token for the tenant session")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local snapshot database")
	requestTimeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
