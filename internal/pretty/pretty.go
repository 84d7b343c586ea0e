package pretty

import (
	"strings"
	"unicode/utf8"

	"dnacode/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Symbols per pair-block line. If <=0, use default (32).
	Width int

	// Draw a caret track under every flagged motif (analyze results).
	ShowIssues bool
	CaretGlyph string // default "^"
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Width:      32,
	ShowIssues: true,
	CaretGlyph: "^",
}

const (
	defaultWidth = 32
	linePrefix   = "# "
	bitsLabel    = "bits  "
	basesLabel   = "bases "
)

// RenderResult renders r with DefaultOptions.
func RenderResult(r engine.Result) string { return RenderResultWithOptions(r, DefaultOptions) }

// RenderResultWithOptions returns the pretty block for r, or "" when there is
// nothing to draw (failed results, empty strands).
func RenderResultWithOptions(r engine.Result, opt Options) string {
	if r.Err != nil || r.Strand == "" {
		return ""
	}
	var b strings.Builder
	if r.Bits != "" {
		renderPairs(&b, r.Bits, r.Strand, opt)
	}
	if opt.ShowIssues {
		renderMotifs(&b, r, opt)
	}
	return b.String()
}

// renderPairs lines every bit pair up above the base it encodes:
//
//	# bits  01 00
//	# bases  T  A
func renderPairs(b *strings.Builder, bits, strand string, opt Options) {
	width := opt.Width
	if width <= 0 {
		width = defaultWidth
	}
	syms := []rune(strand)
	for off := 0; off < len(syms); off += width {
		end := off + width
		if end > len(syms) {
			end = len(syms)
		}
		var top, bottom strings.Builder
		top.WriteString(linePrefix + bitsLabel)
		bottom.WriteString(linePrefix + basesLabel)
		for i := off; i < end; i++ {
			pair := "??"
			if 2*i+2 <= len(bits) {
				pair = bits[2*i : 2*i+2]
			}
			top.WriteString(pair + " ")
			bottom.WriteString(" " + string(syms[i]) + " ")
		}
		b.WriteString(strings.TrimRight(top.String(), " "))
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(bottom.String(), " "))
		b.WriteByte('\n')
	}
}

// renderMotifs prints the strand once, then one caret track per motif issue.
func renderMotifs(b *strings.Builder, r engine.Result, opt Options) {
	glyph := opt.CaretGlyph
	if glyph == "" {
		glyph = "^"
	}
	total := utf8.RuneCountInString(r.Strand)
	wroteStrand := false
	for _, is := range r.Issues {
		if is.Motif == "" {
			continue
		}
		at := strings.Index(r.Strand, is.Motif)
		if at < 0 {
			continue
		}
		if !wroteStrand {
			b.WriteString(linePrefix + r.Strand + "\n")
			wroteStrand = true
		}
		start := utf8.RuneCountInString(r.Strand[:at])
		n := utf8.RuneCountInString(is.Motif)
		b.WriteString(linePrefix)
		b.WriteString(strings.Repeat(" ", start))
		b.WriteString(strings.Repeat(glyph, n))
		b.WriteString(strings.Repeat(" ", total-start-n))
		b.WriteString("  " + string(is.Kind) + "\n")
	}
}
