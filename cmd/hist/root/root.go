package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/flarebyte/hist/cmd/hist/version"
	"github.com/flarebyte/hist/internal/config"
	"github.com/flarebyte/hist/internal/stage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// delimiterValue keeps the raw delimiter string so that the help output
// shows the default as \t rather than a quoted escape.
type delimiterValue string

func (d *delimiterValue) String() string     { return string(*d) }
func (d *delimiterValue) Set(s string) error { *d = delimiterValue(s); return nil }
func (d *delimiterValue) Type() string       { return "char" }

var _ pflag.Value = (*delimiterValue)(nil)

type options struct {
	delimiter delimiterValue
	key       int
	format    string
	version   bool
}

// NewRootCmd creates the hist command wired to the given streams.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{delimiter: config.EscapedTab}
	cmd := &cobra.Command{
		Use:   "hist [OPTIONS] [INPUT]",
		Short: "Plots histogram of input",
		Long: "Plots a text histogram of one column of delimited input.\n\n" +
			"INPUT is an optional file with one entry per line; standard input is read when it is omitted.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return stage.ConfigError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				return version.Print(cmd.OutOrStdout())
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			cfg, err := config.Resolve(config.Options{
				Input:     input,
				Delimiter: string(opts.delimiter),
				Key:       opts.key,
				Format:    opts.format,
			})
			if err != nil {
				return stage.ConfigError(err)
			}
			deps := stage.Deps{Stdin: cmd.InOrStdin(), Stdout: cmd.OutOrStdout()}
			_, err = stage.RunStages(cmd.Context(), stage.Envelope{Config: cfg}, stage.Pipeline, deps)
			return err
		},
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return stage.ConfigError(err)
	})

	f := cmd.Flags()
	f.SortFlags = false
	f.VarP(&opts.delimiter, "delimiter", "d", "column delimiter")
	f.IntVarP(&opts.key, "key", "k", 1, "key (column) selector, 1-based")
	f.StringVarP(&opts.format, "format", "f", string(config.FormatText), "output format: text, json or yaml")
	f.BoolVarP(&opts.version, "version", "V", false, "print version information")

	return cmd
}

// Run executes hist with args against the given streams. Configuration
// errors are followed by the usage text on stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := NewRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if stage.IsKind(err, stage.KindConfig) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return err
}

// Execute runs hist with the process streams.
func Execute(args []string) error {
	return Run(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}
