package huffle

import (
	"fmt"
)

// Encode compresses text.  It returns the serialized tree and the encoded
// Bitstring; together they are all that Decode needs.
func Encode(text string) (HeaderString, Bitstring, error) {
	symbols, err := SymbolsOf(text)
	if err != nil {
		return "", "", err
	}

	root, err := BuildTreeFromFrequencies(CountSymbols(symbols, nil))
	if err != nil {
		return "", "", err
	}

	table, err := GenerateCodeTable(root)
	if err != nil {
		return "", "", err
	}

	bits, err := NewEncoder(table).Encode(symbols)
	if err != nil {
		return "", "", err
	}
	return SerializeTree(root), bits, nil
}

// Decode reverses Encode.
func Decode(header HeaderString, bits Bitstring) (string, error) {
	root, err := DeserializeTree(header)
	if err != nil {
		return "", err
	}

	table, err := GenerateCodeTable(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptHeader, err)
	}

	d, err := NewDecoder(table)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptHeader, err)
	}

	symbols, err := d.DecodeBits(bits)
	if err != nil {
		return "", err
	}
	return TextOf(symbols), nil
}

// PackContainer packs bits and lays out the container bytes.
func PackContainer(header HeaderString, bits Bitstring) ([]byte, error) {
	payload, padding, err := Pack(bits)
	if err != nil {
		return nil, err
	}
	return BuildContainer(header, padding, payload)
}

// ParseContainer reverses PackContainer.
func ParseContainer(data []byte) (HeaderString, Bitstring, error) {
	header, padding, payload, err := ParseContainerParts(data)
	if err != nil {
		return "", "", err
	}
	bits, err := Unpack(payload, padding)
	if err != nil {
		return "", "", err
	}
	return header, bits, nil
}

// Stats summarizes one compression.
type Stats struct {
	InputBytes     uint64
	HeaderBytes    uint64
	PayloadBits    uint64
	ContainerBytes uint64
}

// ComputeStats measures the result of Encode(text).
func ComputeStats(text string, header HeaderString, bits Bitstring) Stats {
	payloadBytes := (uint64(len(bits)) + 7) / 8
	return Stats{
		InputBytes:     uint64(len(text)),
		HeaderBytes:    uint64(len(header)),
		PayloadBits:    uint64(len(bits)),
		ContainerBytes: ContainerHeaderSize + uint64(len(header)) + payloadBytes,
	}
}

// Ratio returns the container size divided by the input size, or 0 for
// empty input.  Values below 1 mean the container is smaller.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.ContainerBytes) / float64(s.InputBytes)
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d bytes in, %d header bytes + %d payload bits = %d bytes out (ratio %.4f)",
		s.InputBytes, s.HeaderBytes, s.PayloadBits, s.ContainerBytes, s.Ratio())
}
