// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"dnacode/internal/engine"
)

// Renderer returns an optional block printed under a row (e.g. pretty alignment).
type Renderer func(engine.Result) string

func writeRow(w io.Writer, r engine.Result, prettyMode bool, render Renderer) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
		return err
	}
	if prettyMode && render != nil {
		if block := render(r); block != "" {
			if _, err := io.WriteString(w, block); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTextWithRenderer writes a buffered TSV table with optional pretty blocks.
func WriteTextWithRenderer(w io.Writer, list []engine.Result, header, prettyMode bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRow(w, r, prettyMode, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamTextWithRenderer is WriteTextWithRenderer over a channel.
func StreamTextWithRenderer(w io.Writer, in <-chan engine.Result, header, prettyMode bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRow(w, r, prettyMode, render); err != nil {
			return err
		}
	}
	return nil
}
