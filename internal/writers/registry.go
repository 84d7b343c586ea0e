// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// ResultWriters maps an output format to its handler. Handlers register in
// init() blocks; last registration wins.
var ResultWriters = map[string]func(w io.Writer, data interface{}) error{}

func RegisterResult(format string, fn func(io.Writer, interface{}) error) { ResultWriters[format] = fn }

// WriteResult dispatches payload to the writer registered for format.
func WriteResult(format string, w io.Writer, payload interface{}) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
