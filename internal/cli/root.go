package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/kprintf"
)

// RootOptions holds the command's flags.
type RootOptions struct {
	Verbose   bool
	EastAsian bool
	Escapes   bool
	Trace     string // empty, or a kprintf.TraceFormat name
}

// NewRootCommand creates the kprintf command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kprintf FORMAT [ARG...]",
		Short: "Interpret a printf format string",
		Long: `Interpret FORMAT with the kernel printf subset and print the result.

Supported directives are %c %s %d %i %u %o %x %X and %%, with the '-' and
'0' flags, a decimal width and a decimal precision. Any other directive is
a fault and exits with status 1.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Trace == "" {
				return nil
			}
			if _, err := kprintf.ParseTraceFormat(opts.Trace); err != nil {
				return WrapExitError(ExitCommandError, "invalid --trace", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug details to stderr")
	cmd.Flags().BoolVar(&opts.EastAsian, "east-asian", false, "count ambiguous-width runes as two columns")
	cmd.Flags().BoolVarP(&opts.Escapes, "escapes", "e", true, "interpret backslash escapes in FORMAT")
	cmd.Flags().StringVar(&opts.Trace, "trace", "", fmt.Sprintf("print primitive calls instead of output (%s)", traceNames()))

	return cmd
}

func traceNames() string {
	var names []string
	for _, f := range kprintf.TraceFormats() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(opts *RootOptions, cmd *cobra.Command, format string, words []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	if opts.Escapes {
		unescaped, err := unescape(format)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid escape in format", err)
		}
		format = unescaped
	}
	args := kprintf.Words(words...)
	logger.Debug("interpreting format", "format", format, "args", len(words))

	if opts.Trace != "" {
		return runTrace(opts, cmd, logger, format, args)
	}

	out := kprintf.NewWriter(cmd.OutOrStdout())
	out.EastAsianWidth = opts.EastAsian
	out.OnPanic = func(msg string) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nkprintf: %s\n", msg)
	}
	err := kprintf.Interpret(out, format, args)
	if werr := out.Err(); werr != nil {
		return WrapExitError(ExitCommandError, "write output", werr)
	}
	if err != nil {
		return fatal(out, logger, err)
	}
	logger.Debug("format complete", "bytes", out.Written(), "unused_args", args.Remaining())
	if n := args.Remaining(); n > 0 {
		logger.Warn("arguments not consumed by format", "count", n)
	}
	return nil
}

func runTrace(opts *RootOptions, cmd *cobra.Command, logger *slog.Logger, format string, args *kprintf.Strings) error {
	rec := &kprintf.Recorder{}
	err := kprintf.Interpret(rec, format, args)
	var exitErr error
	if err != nil {
		exitErr = fatal(rec, logger, err)
	}
	f, _ := kprintf.ParseTraceFormat(opts.Trace)
	if werr := kprintf.WriteTrace(cmd.OutOrStdout(), f, rec.Calls); werr != nil {
		return WrapExitError(ExitCommandError, "write trace", werr)
	}
	logger.Debug("trace complete", "calls", len(rec.Calls))
	return exitErr
}

// fatal reports a fault through out and converts it to an exit error.
func fatal(out kprintf.Output, logger *slog.Logger, err error) error {
	var f *kprintf.Fault
	if errors.As(err, &f) {
		logger.Debug("format fault", "kind", f.Kind, "char", string([]byte{f.Char}), "offset", f.Offset)
		kprintf.Fail(out, f)
	}
	return WrapExitError(ExitFault, "format fault", err)
}

// unescape expands backslash escapes such as \n, \t, \\ and \x41.
// A trailing lone backslash is kept literally.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var sb strings.Builder
	for len(s) > 0 {
		if s[0] != '\\' || len(s) == 1 {
			sb.WriteByte(s[0])
			s = s[1:]
			continue
		}
		r, multibyte, tail, err := strconv.UnquoteChar(s, 0)
		if err != nil {
			return "", fmt.Errorf("%q: %w", s[:2], err)
		}
		if multibyte {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(byte(r))
		}
		s = tail
	}
	return sb.String(), nil
}
