package codec

import "fmt"

// WarningCode tags a non-fatal condition attached to an otherwise successful conversion.
type WarningCode string

const (
	WarnOddLength       WarningCode = "odd_length_padded"
	WarnUnstableRun     WarningCode = "unstable_run"
	WarnInvalidSymbol   WarningCode = "invalid_symbol"
	WarnMaybePadded     WarningCode = "maybe_padded"
	WarnStrayCharacters WarningCode = "stray_characters"
)

// Warning is an advisory produced by the codec. Symbol and Pos are set for
// WarnInvalidSymbol (Pos is 1-based); Count is set for WarnStrayCharacters.
type Warning struct {
	Code   WarningCode
	Symbol string
	Pos    int
	Count  int
}

func (w Warning) String() string {
	switch w.Code {
	case WarnOddLength:
		return "odd number of bits detected; padded with '0' to ensure valid encoding"
	case WarnUnstableRun:
		return "sequence contains AAAA, which might be unstable in practical applications"
	case WarnInvalidSymbol:
		return fmt.Sprintf("invalid symbol %q at %d; replaced with A (00)", w.Symbol, w.Pos)
	case WarnMaybePadded:
		return "sequence length is not a multiple of 4; it might have been padded during encoding"
	case WarnStrayCharacters:
		return fmt.Sprintf("input contains %d non-binary character(s); using only '0' and '1'", w.Count)
	}
	return string(w.Code)
}

// HasWarning reports whether ws contains a warning with the given code.
func HasWarning(ws []Warning, code WarningCode) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}
