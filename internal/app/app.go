// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dnacode/internal/appcore"
	"dnacode/internal/cli"
	"dnacode/internal/clibase"
	"dnacode/internal/cmdutil"
	"dnacode/internal/config"
	"dnacode/internal/output"
	"dnacode/internal/version"
	"dnacode/internal/writers"
)

// flushExit flushes outw and maps the result to an exit code.
func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dnacode")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flushExit(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushExit(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnacode version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if err := opts.ApplyConfig(cfg); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Pretty && opts.Output != output.FormatText {
		cmdutil.Warnf(stderr, opts.Quiet, "--pretty only applies to --output text; ignoring")
	}

	writer := appcore.NewResultWriterFactory(opts.Output, opts.Sort, opts.Header, opts.Pretty)
	coreOpts := appcore.Options{
		Mode:         opts.Mode,
		Literals:     opts.Literals,
		SeqFiles:     opts.SeqFiles,
		Thresholds:   opts.Thresholds,
		Threads:      opts.Threads,
		EchoWarnings: writer.EchoWarnings(),
		Progress:     opts.Progress,
		Quiet:        opts.Quiet,
		FailExitCode: opts.FailExitCode,
	}
	return appcore.Run(parent, stdout, stderr, coreOpts, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
