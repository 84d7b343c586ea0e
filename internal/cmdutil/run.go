package cmdutil

import (
	"context"

	"dnacode/internal/engine"
	"dnacode/internal/pipeline"
)

// Counts summarizes one streamed run.
type Counts struct {
	Total  int // results handed to send
	Failed int // results carrying a per-record error
}

// RunStream runs the shared pipeline, lets observe inspect every result
// (warnings, logging), and streams results via send.
// It returns the counts and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	literals []string,
	seqFiles []string,
	run pipeline.Runner,
	observe func(engine.Result),
	send func(engine.Result) error,
) (Counts, error) {
	var c Counts
	err := pipeline.ForEachResult(ctx, cfg, literals, seqFiles, run, func(r engine.Result) error {
		if observe != nil {
			observe(r)
		}
		if err := send(r); err != nil {
			return err
		}
		c.Total++
		if r.Err != nil {
			c.Failed++
		}
		return nil
	})
	return c, err
}
