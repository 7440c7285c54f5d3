package huffle

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is returned when a tree is requested for zero symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrUnknownSymbol is returned when encoding a symbol that has no code.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrTruncatedStream is returned when the bitstream ends in the middle
	// of a code.
	ErrTruncatedStream = errors.New("truncated bitstream")

	// ErrCorruptHeader is returned when a serialized tree is malformed.
	ErrCorruptHeader = errors.New("corrupt header")

	// ErrMalformedContainer is returned when the length fields of a
	// container disagree with the buffer that holds them.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrCodeTooLong is returned when a tree is deeper than MaxCodeSize.
	ErrCodeTooLong = errors.New("code too long")

	// ErrInvalidBitstring is returned for a Bitstring holding anything
	// other than '0' and '1'.
	ErrInvalidBitstring = errors.New("invalid bitstring")

	// ErrInvalidText is returned for input text that is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")
)
