package stage

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/flarebyte/hist/internal/config"
)

func mustConfig(t *testing.T, delim string, key int) config.Config {
	t.Helper()
	cfg, err := config.Resolve(config.Options{Delimiter: delim, Key: key})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return cfg
}

// runPipeline feeds input through every stage and returns what was written.
func runPipeline(t *testing.T, cfg config.Config, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	deps := Deps{Stdin: strings.NewReader(input), Stdout: &out}
	_, err := RunStages(context.Background(), Envelope{Config: cfg}, Pipeline, deps)
	return out.String(), err
}

func readAll(t *testing.T, rr *RecordReader) []Record {
	t.Helper()
	var recs []Record
	for {
		rec, err := rr.Read()
		if err != nil {
			return recs
		}
		recs = append(recs, Record{Line: rec.Line, Fields: append([]string(nil), rec.Fields...)})
	}
}
