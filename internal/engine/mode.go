// internal/engine/mode.go
package engine

import (
	"fmt"
	"strings"
)

// Format is the non-nucleotide side of a conversion.
type Format int

const (
	FormatBinary Format = iota
	FormatHex
	FormatText
)

var formatNames = [...]string{
	FormatBinary: "binary",
	FormatHex:    "hex",
	FormatText:   "text",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat accepts binary | hex | text (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin":
		return FormatBinary, nil
	case "hex", "hexadecimal":
		return FormatHex, nil
	case "text", "txt":
		return FormatText, nil
	}
	return 0, fmt.Errorf("unknown format %q (want binary | hex | text)", s)
}

// Mode is the closed set of operations: encode or decode per format, or analyze.
type Mode int

const (
	EncodeBinary Mode = iota
	EncodeHex
	EncodeText
	DecodeBinary
	DecodeHex
	DecodeText
	Analyze
)

// Modes lists every Mode in declaration order.
var Modes = []Mode{EncodeBinary, EncodeHex, EncodeText, DecodeBinary, DecodeHex, DecodeText, Analyze}

var modeNames = [...]string{
	EncodeBinary: "encode-binary",
	EncodeHex:    "encode-hex",
	EncodeText:   "encode-text",
	DecodeBinary: "decode-binary",
	DecodeHex:    "decode-hex",
	DecodeText:   "decode-text",
	Analyze:      "analyze",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// EncodeMode returns the encode Mode for f.
func EncodeMode(f Format) Mode { return Mode(f) }

// DecodeMode returns the decode Mode for f.
func DecodeMode(f Format) Mode { return DecodeBinary + Mode(f) }

func (m Mode) IsEncode() bool { return m >= EncodeBinary && m <= EncodeText }
func (m Mode) IsDecode() bool { return m >= DecodeBinary && m <= DecodeText }

// TakesStrand reports whether the input is a nucleotide sequence.
func (m Mode) TakesStrand() bool { return m.IsDecode() || m == Analyze }
