// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"dnacode/internal/common"
	"dnacode/internal/engine"
	"dnacode/internal/fasta"
)

// Config controls the worker pool.
type Config struct {
	Threads int         // number of worker goroutines (>=1)
	Mode    engine.Mode // operation applied to every record

	// FileDone, when set, is called after each sequence file has been fed
	// (including files that failed to open).
	FileDone func(path string)
}

// ForEachResult runs cfg.Mode over every literal input and every FASTA record
// of seqFiles, calling visit once per Result. Results arrive in completion
// order; callers sort when they need a stable order.
// It returns the first error encountered (including context cancellation).
// Per-record failures are carried in Result.Err and do not stop the run.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	literals []string,
	seqFiles []string,
	run Runner,
	visit func(engine.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	jobs := make(chan engine.Record, cfg.Threads*2)
	results := make(chan engine.Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					res := run.Run(cfg.Mode, rec)
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		verr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if verr != nil {
				continue
			}
			if err := visit(r); err != nil {
				verr = err
			}
		}
	}()

	// Feed work
	var ferr error
	send := func(rec engine.Record) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- rec:
			return nil
		}
	}
feed:
	for i, in := range literals {
		if send(engine.Record{ID: common.InputID(i + 1), Index: i, Input: in}) != nil {
			break feed
		}
	}
	for _, fa := range seqFiles {
		if ctx.Err() != nil {
			break
		}
		n := 0
		err := fasta.StreamPathCtx(ctx, fa, func(r fasta.Record) error {
			rec := engine.Record{ID: r.ID, SourceFile: fa, Index: n, Input: string(r.Seq)}
			n++
			return send(rec)
		})
		if cfg.FileDone != nil {
			cfg.FileDone(fa)
		}
		// Keep scanning other files; first error will be returned.
		if err != nil && ferr == nil && ctx.Err() == nil {
			ferr = err
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if ferr != nil {
		return ferr
	}
	return verr
}
