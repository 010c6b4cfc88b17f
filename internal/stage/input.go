package stage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

const openInputStage = "open-input"

// OpenInput returns the configured file, or stdin when path is empty.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		msg := "cannot open input"
		if errors.Is(err, fs.ErrNotExist) {
			msg = "file not found"
		}
		return nil, Errorf(KindIO, openInputStage, err, "%s", msg)
	}
	return f, nil
}

func openInputRunner(_ context.Context, in Envelope, deps Deps) (Envelope, error) {
	src, err := OpenInput(in.Config.Input, deps.Stdin)
	if err != nil {
		return Envelope{}, err
	}
	in.Source = src
	return in, nil
}

func init() { Register(openInputStage, openInputRunner) }
