// core/codec/text.go
package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextBits returns the UTF-8 bytes of text as 8 bits each, so leading zero
// bytes survive.
func TextBits(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			if r == utf8.RuneError && size == 1 {
				return "", fmt.Errorf("%w: invalid UTF-8 byte 0x%02x at offset %d", ErrUnsupportedCharacter, text[i], i)
			}
			i += size
		}
	}

	var b strings.Builder
	b.Grow(8 * len(text))
	for i := 0; i < len(text); i++ {
		fmt.Fprintf(&b, "%08b", text[i])
	}
	return b.String(), nil
}

// EncodeText converts UTF-8 text to a nucleotide sequence.
func EncodeText(text string) (string, []Warning, error) {
	bits, err := TextBits(text)
	if err != nil {
		return "", nil, err
	}
	seq, warns := EncodeBits(bits)
	return seq, warns, nil
}

// DecodeText decodes seq into an integer, re-serializes it to the minimal
// big-endian byte form and reads those bytes as UTF-8.
//
// Leading zero bytes are not recoverable. An all-zero pattern is integer 0,
// which serializes to a single zero byte and decodes to "\x00".
func DecodeText(seq string) (string, []Warning, error) {
	bits, warns := DecodeSequence(seq)
	n, err := bitsToInt(bits)
	if err != nil {
		return "", warns, err
	}
	raw := n.Bytes()
	if len(raw) == 0 {
		raw = []byte{0}
	}
	if !utf8.Valid(raw) {
		return "", warns, fmt.Errorf("%w: % x", ErrInvalidText, raw)
	}
	return string(raw), warns, nil
}
