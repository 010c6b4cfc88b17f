// Package buildinfo exposes version metadata for hist. Values can be
// overridden at build time via -ldflags; cli.Version and cli.Date are
// honoured as fallbacks for external build scripts.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/hist/cli"
)

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build date (optional).
	Date = ""
)

func version() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if cli.Version != "" {
		return cli.Version
	}
	return "dev"
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := version()

	d := Date
	if d == "" {
		d = cli.Date
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
