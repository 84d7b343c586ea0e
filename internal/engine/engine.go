// internal/engine/engine.go
package engine

import (
	"fmt"
	"strings"

	"dnacode-core/codec"
	"dnacode-core/practicality"
)

// Config carries the tunables the core exposes.
type Config struct {
	Thresholds practicality.Thresholds
}

type Engine struct{ cfg Config }

// DefaultConfig runs the analyzer with practicality.DefaultThresholds.
func DefaultConfig() Config {
	return Config{Thresholds: practicality.DefaultThresholds}
}

// New uses c as given. A zero Thresholds is a valid setting: the run and
// palindrome checks are off and any GC content above 0% is flagged.
func New(c Config) *Engine {
	return &Engine{cfg: c}
}

// Record is one raw input handed over by a driver.
type Record struct {
	ID         string
	SourceFile string
	Index      int // 0-based position within SourceFile (or the argument list)
	Input      string
}

// Result is the outcome of one Mode over one Record. Err holds a per-record
// failure; Output is empty when Err is set.
type Result struct {
	ID         string
	SourceFile string
	Index      int
	Mode       Mode
	Input      string

	Output string
	Bits   string // binary form that was encoded or decoded
	Strand string // nucleotide side of the conversion

	Warnings []codec.Warning
	Issues   []practicality.Issue
	Stats    practicality.Stats

	Err error
}

// Practical reports whether an analysis found nothing to flag.
func (r Result) Practical() bool { return r.Err == nil && len(r.Issues) == 0 }

// NormalizeStrand upper-cases a user-supplied sequence and trims surrounding
// whitespace. Interior symbols are left for the decoder to judge.
func NormalizeStrand(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Run dispatches m over rec.
func (e *Engine) Run(m Mode, rec Record) Result {
	res := Result{ID: rec.ID, SourceFile: rec.SourceFile, Index: rec.Index, Mode: m, Input: rec.Input}

	switch m {
	case EncodeBinary:
		res.Strand, res.Warnings, res.Err = codec.EncodeBinary(rec.Input)
	case EncodeHex:
		res.Strand, res.Warnings, res.Err = codec.EncodeHex(rec.Input)
	case EncodeText:
		res.Strand, res.Warnings, res.Err = codec.EncodeText(rec.Input)
	case DecodeBinary:
		res.Strand = NormalizeStrand(rec.Input)
		res.Output, res.Warnings = codec.DecodeSequence(res.Strand)
		res.Bits = res.Output
	case DecodeHex:
		res.Strand = NormalizeStrand(rec.Input)
		res.Output, res.Warnings, res.Err = codec.DecodeHex(res.Strand)
	case DecodeText:
		res.Strand = NormalizeStrand(rec.Input)
		res.Output, res.Warnings, res.Err = codec.DecodeText(res.Strand)
	case Analyze:
		res.Strand = NormalizeStrand(rec.Input)
		res.Issues = practicality.AnalyzeWith(res.Strand, e.cfg.Thresholds)
	default:
		res.Err = fmt.Errorf("unsupported mode %v", m)
		return res
	}

	if res.Err != nil {
		res.Output = ""
		if m.IsEncode() {
			res.Strand = ""
		}
		return res
	}
	if m.IsEncode() {
		res.Output = res.Strand
		res.Bits, _ = codec.DecodeSequence(res.Strand)
	} else if m != DecodeBinary && m != Analyze {
		res.Bits, _ = codec.DecodeSequence(res.Strand)
	}
	res.Stats = practicality.Summarize(res.Strand)
	return res
}
