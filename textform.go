package huffle

import (
	"fmt"
	"strconv"
	"strings"
)

// TextSeparator ends the length prefix of the text form.
const TextSeparator = '/'

// FormatText renders a header and Bitstring in the printable text form
//
//     <len(header) in bytes, decimal>/<header><bits>
//
// which carries the same information as a container without any binary
// packing.
func FormatText(header HeaderString, bits Bitstring) string {
	var sb strings.Builder
	sb.Grow(12 + len(header) + len(bits))
	sb.WriteString(strconv.Itoa(len(header)))
	sb.WriteByte(TextSeparator)
	sb.WriteString(string(header))
	sb.WriteString(string(bits))
	return sb.String()
}

// ParseText reverses FormatText.  A missing separator, or a length that is
// not a decimal number within range, fails with ErrMalformedContainer.
func ParseText(text string) (HeaderString, Bitstring, error) {
	index := strings.IndexByte(text, TextSeparator)
	if index < 0 {
		return "", "", fmt.Errorf("%w: missing %q after the header length", ErrMalformedContainer, TextSeparator)
	}

	headerLen, err := strconv.ParseUint(text[:index], 10, 32)
	if err != nil {
		return "", "", fmt.Errorf("%w: bad header length %q", ErrMalformedContainer, text[:index])
	}

	rest := text[index+1:]
	if headerLen > uint64(len(rest)) {
		return "", "", fmt.Errorf("%w: header length %d exceeds the %d bytes remaining", ErrMalformedContainer, headerLen, len(rest))
	}

	bits := Bitstring(rest[headerLen:])
	if err := bits.Validate(); err != nil {
		return "", "", err
	}
	return HeaderString(rest[:headerLen]), bits, nil
}
