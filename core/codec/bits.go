// core/codec/bits.go
package codec

import (
	"fmt"
	"strings"

	"dnacode-core/nucleotide"
)

// unstableRun is flagged after encoding; it does not alter the output.
const unstableRun = "AAAA"

// EncodeBits maps consecutive bit pairs to nucleotides. An odd-length input is
// padded with a single trailing '0' and reported as WarnOddLength.
//
// bits is expected to contain only '0' and '1' (see FilterBinary). A pair
// holding anything else is written as A and reported as WarnInvalidSymbol.
func EncodeBits(bits string) (string, []Warning) {
	var warns []Warning
	if len(bits)%2 != 0 {
		bits += "0"
		warns = append(warns, Warning{Code: WarnOddLength})
	}

	var b strings.Builder
	b.Grow(len(bits) / 2)
	for i := 0; i < len(bits); i += 2 {
		pair := bits[i : i+2]
		base, ok := nucleotide.PairToBase[pair]
		if !ok {
			warns = append(warns, Warning{Code: WarnInvalidSymbol, Symbol: pair, Pos: i + 1})
			base = nucleotide.BaseA
		}
		b.WriteByte(base)
	}

	seq := b.String()
	if strings.Contains(seq, unstableRun) {
		warns = append(warns, Warning{Code: WarnUnstableRun})
	}
	return seq, warns
}

// DecodeSequence maps every symbol back to its bit pair. Symbols outside
// A/T/C/G decode to "00" with a WarnInvalidSymbol each; a length that is not a
// multiple of 4 adds WarnMaybePadded.
func DecodeSequence(seq string) (string, []Warning) {
	var warns []Warning
	var b strings.Builder
	b.Grow(2 * len(seq))

	n := 0
	for _, r := range seq {
		n++
		pair, ok := nucleotide.BaseToPair[r]
		if !ok {
			warns = append(warns, Warning{Code: WarnInvalidSymbol, Symbol: string(r), Pos: n})
			pair = "00"
		}
		b.WriteString(pair)
	}
	if n%4 != 0 {
		warns = append(warns, Warning{Code: WarnMaybePadded})
	}
	return b.String(), warns
}

// FilterBinary keeps only '0' and '1' from raw, in order.
func FilterBinary(raw string) (string, []Warning, error) {
	var b strings.Builder
	b.Grow(len(raw))
	dropped := 0
	for _, r := range raw {
		if r == '0' || r == '1' {
			b.WriteRune(r)
			continue
		}
		dropped++
	}
	var warns []Warning
	if dropped > 0 {
		warns = append(warns, Warning{Code: WarnStrayCharacters, Count: dropped})
	}
	if b.Len() == 0 {
		return "", warns, fmt.Errorf("%w: no valid binary digits found", ErrEmptyInput)
	}
	return b.String(), warns, nil
}

// EncodeBinary filters raw down to binary digits and encodes them.
func EncodeBinary(raw string) (string, []Warning, error) {
	bits, warns, err := FilterBinary(raw)
	if err != nil {
		return "", warns, err
	}
	seq, more := EncodeBits(bits)
	return seq, append(warns, more...), nil
}
