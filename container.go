package huffle

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ContainerHeaderSize is the size of the fixed part of a container: the
// header length and the padding count, each a big-endian uint32.
const ContainerHeaderSize = 8

// BuildContainer lays out a container:
//
//     offset 0   uint32  len(header) in bytes, big-endian
//     offset 4   uint32  padding bits in the last payload byte, big-endian
//     offset 8   header, UTF-8
//     then       payload
//
func BuildContainer(header HeaderString, padding uint32, payload []byte) ([]byte, error) {
	if uint64(len(header)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: header of %d bytes does not fit a uint32", ErrMalformedContainer, len(header))
	}
	if padding > 7 {
		return nil, fmt.Errorf("%w: padding %d exceeds 7 bits", ErrMalformedContainer, padding)
	}

	out := make([]byte, ContainerHeaderSize, ContainerHeaderSize+len(header)+len(payload))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(header)))
	binary.BigEndian.PutUint32(out[4:8], padding)
	out = append(out, string(header)...)
	out = append(out, payload...)
	return out, nil
}

// ParseContainerParts splits a container built by BuildContainer back into
// its parts.  The returned payload aliases data.
func ParseContainerParts(data []byte) (header HeaderString, padding uint32, payload []byte, err error) {
	if len(data) < ContainerHeaderSize {
		err = fmt.Errorf("%w: %d bytes is shorter than the %d byte fixed header", ErrMalformedContainer, len(data), ContainerHeaderSize)
		return
	}

	headerLen := uint64(binary.BigEndian.Uint32(data[0:4]))
	padding = binary.BigEndian.Uint32(data[4:8])
	rest := data[ContainerHeaderSize:]

	if headerLen > uint64(len(rest)) {
		err = fmt.Errorf("%w: header length %d exceeds the %d bytes remaining", ErrMalformedContainer, headerLen, len(rest))
		return
	}
	if padding > 7 {
		err = fmt.Errorf("%w: padding %d exceeds 7 bits", ErrMalformedContainer, padding)
		return
	}

	header = HeaderString(rest[:headerLen])
	payload = rest[headerLen:]
	if padding != 0 && len(payload) == 0 {
		err = fmt.Errorf("%w: padding %d with an empty payload", ErrMalformedContainer, padding)
		return "", 0, nil, err
	}
	return header, padding, payload, nil
}
