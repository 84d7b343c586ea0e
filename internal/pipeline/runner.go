// internal/pipeline/runner.go
package pipeline

import "dnacode/internal/engine"

// Runner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Runner interface {
	Run(m engine.Mode, rec engine.Record) engine.Result
}

var _ Runner = (*engine.Engine)(nil)
