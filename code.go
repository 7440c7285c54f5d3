package huffle

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the bit length of the longest representable Code.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	if size < MaxCodeSize {
		bits &= (uint64(1) << size) - 1
	}
	return Code{Size: size, Bits: bits}
}

// Append returns this Code extended by one bit.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "cannot append to a %d-bit code", hc.Size)
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Bitstring returns the bits of this Code as '0' and '1' characters.
func (hc Code) Bitstring() Bitstring {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return Bitstring(fmt.Sprintf(format, hc.Bits))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc.Bitstring()))
}

var _ fmt.Stringer = Code{}

// Bitstring is a sequence of bits written as the characters '0' and '1'.
type Bitstring string

// Validate returns ErrInvalidBitstring if this Bitstring contains any
// character other than '0' or '1'.
func (b Bitstring) Validate() error {
	for i := 0; i < len(b); i++ {
		if ch := b[i]; ch != '0' && ch != '1' {
			return fmt.Errorf("%w: byte %q at offset %d", ErrInvalidBitstring, ch, i)
		}
	}
	return nil
}
