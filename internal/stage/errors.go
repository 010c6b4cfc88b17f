package stage

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal run error.
type Kind int

const (
	KindConfig Kind = iota + 1
	KindIO
	KindParse
	KindMissingField
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config error"
	case KindIO:
		return "io error"
	case KindParse:
		return "parse error"
	case KindMissingField:
		return "missing field"
	}
	return "error"
}

const (
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

// Error is the single error type surfaced by the pipeline. Every Error is
// terminal for the run.
type Error struct {
	Kind    Kind
	Stage   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Stage != "" {
		msg += ": " + e.Stage
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode is 2 for configuration errors and 1 otherwise.
func (e *Error) ExitCode() int {
	if e.Kind == KindConfig {
		return exitCodeUsage
	}
	return exitCodeFailure
}

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind Kind, stage string, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Stage: stage, Message: fmt.Sprintf(format, args...), Err: cause}
}

// ConfigError wraps an argument resolution failure.
func ConfigError(cause error) *Error {
	return &Error{Kind: KindConfig, Err: cause}
}

// IsKind reports whether err is, or wraps, an Error of kind k.
func IsKind(err error, k Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == k
}
