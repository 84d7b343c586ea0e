package codec

import "errors"

// Conversion failures. Callers match them with errors.Is; the returned
// errors carry extra context about the offending input.
var (
	ErrEmptyInput           = errors.New("empty input")
	ErrInvalidFormat        = errors.New("invalid hexadecimal input")
	ErrUnsupportedCharacter = errors.New("input contains characters that cannot be encoded")
	ErrInvalidText          = errors.New("decoded bytes do not represent valid text")
	ErrConversionFailure    = errors.New("binary sequence cannot be converted")
)
