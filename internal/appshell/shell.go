// Package appshell wires a RunContext-style entry point to the process:
// signal-aware context, os.Args, stdio and exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type RunFunc func(context.Context, []string, io.Writer, io.Writer) int

// Main runs a batch tool; no arguments means "-h".
func Main(run RunFunc) { start(run, true) }

// MainInteractive runs a tool that is useful without arguments.
func MainInteractive(run RunFunc) { start(run, false) }

func start(run RunFunc, helpWhenEmpty bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 && helpWhenEmpty {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
