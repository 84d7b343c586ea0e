// internal/output/json.go
package output

import (
	"io"
	"math"

	"dnacode/internal/engine"
	"dnacode/internal/jsonutil"
	"dnacode/internal/strandid"
	"dnacode/pkg/api"
)

func round1(f float64) float64 { return math.Round(f*10) / 10 }

// ToAPIResult converts a domain Result to the stable wire schema (v1).
func ToAPIResult(r engine.Result) api.ResultV1 {
	v := api.ResultV1{
		ID:         r.ID,
		SourceFile: r.SourceFile,
		Mode:       r.Mode.String(),
		Input:      r.Input,
		Output:     r.Output,
		Bits:       r.Bits,
		StrandCID:  strandid.CID(r.Strand),
		Length:     r.Stats.Length,
		GCPercent:  round1(r.Stats.GCPercent),
	}
	for _, w := range r.Warnings {
		v.Warnings = append(v.Warnings, api.WarningV1{Code: string(w.Code), Message: w.String()})
	}
	for _, is := range r.Issues {
		v.Issues = append(v.Issues, api.IssueV1{
			Kind:      string(is.Kind),
			Motif:     is.Motif,
			GCPercent: round1(is.GCPercent),
			Message:   is.Message,
		})
	}
	if r.Mode == engine.Analyze && r.Err == nil {
		practical := r.Practical()
		v.Practical = &practical
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

func toAPIResults(list []engine.Result) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Result) error {
	return jsonutil.EncodePretty(w, toAPIResults(list))
}
