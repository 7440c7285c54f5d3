package huffle

import (
	"sort"
)

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// CountFrequencies counts the Symbols of text.  If into is non-nil, the
// counts are merged into it and it is returned; otherwise a new table is
// allocated.  The text must be valid UTF-8.
func CountFrequencies(text string, into FrequencyTable) (FrequencyTable, error) {
	symbols, err := SymbolsOf(text)
	if err != nil {
		return into, err
	}
	return CountSymbols(symbols, into), nil
}

// CountSymbols is like CountFrequencies, but for text that has already been
// split into Symbols.
func CountSymbols(symbols []Symbol, into FrequencyTable) FrequencyTable {
	if into == nil {
		into = make(FrequencyTable)
	}
	for _, symbol := range symbols {
		into[symbol] = saturatingAdd(into[symbol], 1)
	}
	return into
}

// Symbols returns the keys of this table in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ft))
	for symbol := range ft {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Leaves returns one leaf Node per Symbol, in ascending Symbol order, each
// weighted by its count.
func (ft FrequencyTable) Leaves() []*Node {
	symbols := ft.Symbols()
	out := make([]*Node, len(symbols))
	for index, symbol := range symbols {
		out[index] = NewLeaf(symbol, ft[symbol])
	}
	return out
}
