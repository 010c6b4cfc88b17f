package stage

import (
	"context"
	"slices"

	"github.com/flarebyte/hist/internal/natural"
)

const sortKeysStage = "sort-keys"

// SortKeys returns the table's keys in natural lexical order.
func SortKeys(t *Table) []string {
	keys := t.Keys()
	slices.SortStableFunc(keys, natural.Compare)
	return keys
}

func sortKeysRunner(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Table == nil {
		in.Table = NewTable()
	}
	in.Keys = SortKeys(in.Table)
	return in, nil
}

func init() { Register(sortKeysStage, sortKeysRunner) }
