// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"swscan/internal/background"
	"swscan/internal/cli"
	"swscan/internal/writers"
)

// ErrMissingInput reports a required input file or directory that does
// not exist.
var ErrMissingInput = errors.New("missing input")

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitFailure     = 3
	ExitInterrupted = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	r := &runner{stdout: outw, stderr: stderr}
	root := cli.NewRootCommand(cli.Handlers{Score: r.score, Aggregate: r.aggregate}, outw, stderr)
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) && err == nil {
		err = e
	}
	return exitCode(err, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		_, _ = fmt.Fprintln(stderr, "interrupted")
		return ExitInterrupted
	case cli.IsUsage(err):
		_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'swscan --help' for usage.\n", err)
		return ExitUsage
	case errors.Is(err, ErrMissingInput), errors.Is(err, background.ErrUnknownSpecies):
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}
}
