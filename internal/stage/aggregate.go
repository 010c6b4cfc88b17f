package stage

import (
	"context"
	"io"
)

const aggregateStage = "aggregate"

// Table counts occurrences of each distinct key.
type Table struct {
	counts  map[string]int
	order   []string
	records int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{counts: map[string]int{}}
}

// Add records one occurrence of key.
func (t *Table) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
	t.records++
}

// Count returns the occurrences of key, zero if it was never added.
func (t *Table) Count(key string) int { return t.counts[key] }

func (t *Table) size() int { return len(t.order) }

// total is the sum of all counts.
func (t *Table) total() int { return t.records }

// Keys returns the distinct keys in first-seen order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Aggregate reads every record from rr and tallies field key (1-based).
// A record with fewer than key fields aborts with a KindMissingField error.
func Aggregate(rr *RecordReader, key int) (*Table, error) {
	t := NewTable()
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		if key > len(rec.Fields) {
			return nil, Errorf(KindMissingField, aggregateStage, nil,
				"line %d: field %d requested but record has %d", rec.Line, key, len(rec.Fields))
		}
		t.Add(rec.Fields[key-1])
	}
}

func aggregateRunner(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Source == nil {
		return Envelope{}, Errorf(KindIO, aggregateStage, nil, "no input opened")
	}
	defer in.Source.Close()
	t, err := Aggregate(NewRecordReader(in.Source, in.Config.Delimiter), in.Config.Key)
	if err != nil {
		return Envelope{}, err
	}
	in.Source = nil
	in.Table = t
	return in, nil
}

func init() { Register(aggregateStage, aggregateRunner) }
