package stage

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/flarebyte/hist/internal/config"
	"gopkg.in/yaml.v3"
)

const renderStage = "render"

// Marker is the character a bar is drawn with.
const Marker = "#"

// Entry is one histogram row in structured output.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Entries pairs each key with its count, preserving the order of keys.
func Entries(t *Table, keys []string) []Entry {
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Count: t.Count(k)})
	}
	return out
}

// RenderText writes one "key<TAB>count<TAB>bars" line per key.
func RenderText(w io.Writer, t *Table, keys []string) error {
	bw := bufio.NewWriter(w)
	for _, k := range keys {
		n := t.Count(k)
		bw.WriteString(k)
		bw.WriteByte('\t')
		bw.WriteString(strconv.Itoa(n))
		bw.WriteByte('\t')
		bw.WriteString(strings.Repeat(Marker, n))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func renderJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func renderYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

// Render writes the histogram in the requested format.
func Render(w io.Writer, format config.Format, t *Table, keys []string) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, Entries(t, keys))
	case config.FormatYAML:
		return renderYAML(w, Entries(t, keys))
	}
	return RenderText(w, t, keys)
}

func renderRunner(_ context.Context, in Envelope, deps Deps) (Envelope, error) {
	out := deps.Stdout
	if out == nil {
		out = os.Stdout
	}
	if in.Table == nil {
		in.Table = NewTable()
	}
	if err := Render(out, in.Config.Format, in.Table, in.Keys); err != nil {
		return Envelope{}, Errorf(KindIO, renderStage, err, "write failed")
	}
	return in, nil
}

func init() { Register(renderStage, renderRunner) }
