package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// EscapedTab is the two-character spelling of the tab delimiter accepted on
// the command line and shown as the flag default.
const EscapedTab = `\t`

// Format selects how the histogram is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrInvalidKey       = errors.New("invalid key")
	ErrInvalidFormat    = errors.New("invalid format")
)

// Options holds the raw command line values before resolution.
type Options struct {
	Input     string
	Delimiter string
	Key       int
	Format    string
}

// Config is the resolved, immutable run configuration.
type Config struct {
	// Input is the file to read; empty means standard input.
	Input     string
	Delimiter rune
	// Key is the 1-based index of the field to tally.
	Key    int
	Format Format
}

// Resolve validates opts and produces a Config.
func Resolve(opts Options) (Config, error) {
	delim, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return Config{}, err
	}
	if opts.Key < 1 {
		return Config{}, fmt.Errorf("%w: %d (must be a positive integer)", ErrInvalidKey, opts.Key)
	}
	format, err := parseFormat(opts.Format)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Input:     opts.Input,
		Delimiter: delim,
		Key:       opts.Key,
		Format:    format,
	}, nil
}

// parseDelimiter maps the escaped tab to a tab and otherwise takes the
// first character of s.
func parseDelimiter(s string) (rune, error) {
	if s == EscapedTab {
		return '\t', nil
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidDelimiter)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !splittable(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}
	return r, nil
}

// splittable reports whether a record reader can split lines on r.
func splittable(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' &&
		utf8.ValidRune(r) && r != utf8.RuneError
}

func parseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q (supported: text, json, yaml)", ErrInvalidFormat, s)
}
