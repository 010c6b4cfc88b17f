package version

import (
	"fmt"
	"io"

	"github.com/flarebyte/hist/internal/buildinfo"
)

// Line is the single line printed for --version.
func Line() string {
	return "hist " + buildinfo.Summary()
}

// Print writes Line to w.
func Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, Line())
	return err
}
