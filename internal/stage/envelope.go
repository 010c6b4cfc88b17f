package stage

import (
	"io"

	"github.com/flarebyte/hist/internal/config"
)

// Envelope is the state handed from one stage to the next.
type Envelope struct {
	Config config.Config
	// Source is set by open-input and consumed by aggregate.
	Source io.ReadCloser
	// Table is finalised by aggregate; later stages only read it.
	Table *Table
	// Keys holds the distinct keys in render order, set by sort-keys.
	Keys []string
}
