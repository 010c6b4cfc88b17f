package main

import (
	"os"

	"github.com/flarebyte/hist/cmd/hist/root"
	"github.com/flarebyte/hist/internal/stage"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// One line on stderr, no stack traces.
		_, _ = os.Stderr.WriteString("hist: " + stage.SanitizeMessage(err.Error()) + "\n")
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
