// Package buildinfo carries version metadata injected via -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Set at build time with
// -ldflags "-X .../buildinfo.BuildVersion=... -X .../buildinfo.BuildDate=... -X .../buildinfo.BuildCommit=..."
var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the build metadata banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
