package huffle

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack packs a Bitstring into bytes, most significant bit first.  If the
// length is not a multiple of 8, the last byte is padded on the right with 0
// bits, and padding reports how many; an aligned Bitstring has no padding.
func Pack(bits Bitstring) (data []byte, padding uint32, err error) {
	if err = bits.Validate(); err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		if err = w.WriteBool(bits[i] == '1'); err != nil {
			return nil, 0, err
		}
	}
	skipped, err := w.Align()
	if err != nil {
		return nil, 0, err
	}
	if err = w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), uint32(skipped), nil
}

// Unpack reverses Pack: it expands each byte to 8 bits, most significant bit
// first, and drops the last padding bits.  Padding of 8 or more, or padding
// without any data, fails with ErrMalformedContainer.
func Unpack(data []byte, padding uint32) (Bitstring, error) {
	if padding > 7 {
		return "", fmt.Errorf("%w: padding %d exceeds 7 bits", ErrMalformedContainer, padding)
	}
	if padding != 0 && len(data) == 0 {
		return "", fmt.Errorf("%w: padding %d with an empty payload", ErrMalformedContainer, padding)
	}

	numBits := uint64(len(data))*8 - uint64(padding)
	out := make([]byte, 0, numBits)
	r := bitio.NewReader(bytes.NewReader(data))
	for i := uint64(0); i < numBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			out = append(out, '1')
		} else {
			out = append(out, '0')
		}
	}
	return Bitstring(out), nil
}
