// core/codec/hex.go
package codec

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// HexBits strips an optional 0x/0X prefix and expands every hex digit into
// four bits, most significant nibble first.
func HexBits(hex string) (string, error) {
	s := hex
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" {
		return "", fmt.Errorf("%w: no hexadecimal digits", ErrInvalidFormat)
	}

	var b strings.Builder
	b.Grow(4 * len(s))
	for i := 0; i < len(s); i++ {
		v, err := strconv.ParseUint(s[i:i+1], 16, 8)
		if err != nil {
			return "", fmt.Errorf("%w: %q at %d is not a hexadecimal digit", ErrInvalidFormat, s[i], i+1)
		}
		fmt.Fprintf(&b, "%04b", v)
	}
	return b.String(), nil
}

// EncodeHex converts a hexadecimal string to a nucleotide sequence.
func EncodeHex(hex string) (string, []Warning, error) {
	bits, err := HexBits(hex)
	if err != nil {
		return "", nil, err
	}
	seq, warns := EncodeBits(bits)
	return seq, warns, nil
}

// DecodeHex decodes seq and renders the bits as a lowercase, 0x-prefixed
// hexadecimal integer without leading zeros ("0x0" for zero).
func DecodeHex(seq string) (string, []Warning, error) {
	bits, warns := DecodeSequence(seq)
	n, err := bitsToInt(bits)
	if err != nil {
		return "", warns, err
	}
	return "0x" + n.Text(16), warns, nil
}

// bitsToInt interprets bits as an unsigned big-endian integer.
func bitsToInt(bits string) (*big.Int, error) {
	if bits == "" {
		return nil, fmt.Errorf("%w: no bits to interpret", ErrConversionFailure)
	}
	n, ok := new(big.Int).SetString(bits, 2)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a binary number", ErrConversionFailure, bits)
	}
	return n, nil
}
