// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"dnacode/internal/engine"
	"dnacode/internal/jsonlutil"
	"dnacode/internal/output"
)

// StartResultJSONLWriter streams each engine.Result as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return jsonlutil.Start[engine.Result](out, bufSize,
		func(enc *json.Encoder, r engine.Result) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}

// pumpJSONL feeds src into a JSONL writer, stopping early if the writer fails.
func pumpJSONL(w io.Writer, src func(yield func(engine.Result) bool)) error {
	pipe, done := StartResultJSONLWriter(w, 64)
	var werr error
	stopped := false
	src(func(r engine.Result) bool {
		select {
		case pipe <- r:
			return true
		case werr = <-done:
			stopped = true
			return false
		}
	})
	close(pipe)
	if stopped {
		return werr
	}
	return <-done
}
