// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"dnacode-core/practicality"
	"dnacode/internal/cmdutil"
	"dnacode/internal/engine"
	"dnacode/internal/pipeline"
	"dnacode/internal/progress"
	"dnacode/internal/writers"
)

type Options struct {
	Mode     engine.Mode
	Literals []string
	SeqFiles []string

	Thresholds practicality.Thresholds
	Threads    int

	// EchoWarnings prints per-record codec warnings to stderr.
	EchoWarnings bool
	Progress     bool
	Quiet        bool
	FailExitCode int
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error)
}

// Run executes one batch and maps the outcome to an exit code:
// 0 ok, FailExitCode when any record failed, 3 on I/O errors, 130 on cancel.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	eng := engine.New(engine.Config{Thresholds: o.Thresholds})

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	bar := progress.NewFiles(stderr, len(o.SeqFiles), o.Progress && !o.Quiet)

	counts, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{
			Threads:  thr,
			Mode:     o.Mode,
			FileDone: bar.Done,
		},
		o.Literals,
		o.SeqFiles,
		eng,
		func(r engine.Result) {
			if o.EchoWarnings {
				cmdutil.WarnRecord(stderr, o.Quiet, r.ID, r.Warnings)
			}
		},
		func(r engine.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	bar.Finish()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if counts.Failed > 0 {
		cmdutil.Warnf(stderr, o.Quiet, "%d of %d records failed", counts.Failed, counts.Total)
		return o.FailExitCode
	}
	return 0
}
