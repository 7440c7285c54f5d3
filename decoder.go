package huffle

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Decoder turns a Bitstring back into Symbols using a CodeTable.
type Decoder struct {
	table   map[Code]Symbol
	minSize byte
	maxSize byte
}

// Init initializes this Decoder by inverting the given CodeTable.
//
// The table must be prefix-free and must not give two Symbols the same Code.
// An empty Code is rejected, since it would match without consuming input.
//
func (d *Decoder) Init(table CodeTable) error {
	if len(table) == 0 {
		return ErrEmptyAlphabet
	}

	inverse := make(map[Code]Symbol, len(table))

	var minSize, maxSize byte
	first := true
	for symbol, hc := range table {
		if hc.Size == 0 {
			return fmt.Errorf("empty code for symbol %q", rune(symbol))
		}
		if other, found := inverse[hc]; found {
			return fmt.Errorf("symbols %q and %q share code %s", rune(other), rune(symbol), hc)
		}
		inverse[hc] = symbol
		if first {
			first = false
			minSize, maxSize = hc.Size, hc.Size
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}

	if !table.IsPrefixFree() {
		return fmt.Errorf("code table is not prefix-free")
	}

	*d = Decoder{
		table:   inverse,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// NewDecoder is a convenience function that constructs and initializes a
// Decoder.
func NewDecoder(table CodeTable) (*Decoder, error) {
	d := new(Decoder)
	if err := d.Init(table); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode attempts to decode a Huffman code into a Symbol.  If hc is not a
// complete code, it returns InvalidSymbol.
func (d Decoder) Decode(hc Code) Symbol {
	symbol, found := d.table[hc]
	if !found {
		return InvalidSymbol
	}
	return symbol
}

// DecodeBits decodes a whole Bitstring.  Starting at the first unconsumed
// bit, it grows a candidate code one bit at a time until the candidate
// matches; since the code is prefix-free, the first match is the only one.
//
// If the input ends in the middle of a code, or the candidate grows past
// the longest code without matching, DecodeBits fails with
// ErrTruncatedStream.
//
func (d Decoder) DecodeBits(bits Bitstring) ([]Symbol, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}

	var out []Symbol
	var hc Code
	var start int
	for i := 0; i < len(bits); i++ {
		hc = hc.Append(bits[i] == '1')
		if hc.Size < d.minSize {
			continue
		}
		if symbol, found := d.table[hc]; found {
			out = append(out, symbol)
			hc = Code{}
			start = i + 1
			continue
		}
		if hc.Size >= d.maxSize {
			return out, fmt.Errorf("%w: no code matches %s at bit offset %d", ErrTruncatedStream, hc, start)
		}
	}
	if hc.Size != 0 {
		return out, fmt.Errorf("%w: %d dangling bits at bit offset %d", ErrTruncatedStream, hc.Size, start)
	}
	return out, nil
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", hc, strconv.QuoteRune(rune(d.table[hc])))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
