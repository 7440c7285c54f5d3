package huffle

import (
	"fmt"
	"strings"
)

// Encoder turns Symbols into a Bitstring using a CodeTable.
type Encoder struct {
	table CodeTable
}

// Init initializes this Encoder.
func (e *Encoder) Init(table CodeTable) {
	*e = Encoder{table: table}
}

// NewEncoder is a convenience function that constructs and initializes an
// Encoder.
func NewEncoder(table CodeTable) *Encoder {
	e := new(Encoder)
	e.Init(table)
	return e
}

// EncodeSymbol returns the Code for one Symbol.
func (e Encoder) EncodeSymbol(symbol Symbol) (Code, error) {
	hc, found := e.table[symbol]
	if !found {
		return Code{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, rune(symbol))
	}
	return hc, nil
}

// Encode concatenates, in order, the Code of each Symbol.  A Symbol that is
// missing from the table fails with ErrUnknownSymbol.
func (e Encoder) Encode(symbols []Symbol) (Bitstring, error) {
	size, err := e.EncodedSize(symbols)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(int(size))
	for _, symbol := range symbols {
		sb.WriteString(string(e.table[symbol].Bitstring()))
	}
	return Bitstring(sb.String()), nil
}

// EncodedSize returns the length in bits of Encode(symbols), without
// building the Bitstring.
func (e Encoder) EncodedSize(symbols []Symbol) (uint64, error) {
	var total uint64
	for _, symbol := range symbols {
		hc, err := e.EncodeSymbol(symbol)
		if err != nil {
			return 0, err
		}
		total += uint64(hc.Size)
	}
	return total, nil
}
