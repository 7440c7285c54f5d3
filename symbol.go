package huffle

import (
	"unicode"
	"unicode/utf8"
)

// Symbol represents one unit of the input alphabet: a Unicode code point.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is a Unicode scalar value, i.e. it can
// be written as UTF-8 and read back unchanged.
func (s Symbol) IsValid() bool {
	return utf8.ValidRune(rune(s))
}

// SymbolsOf splits text into Symbols.  The text must be valid UTF-8.
func SymbolsOf(text string) ([]Symbol, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	out := make([]Symbol, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out, nil
}

// TextOf joins Symbols back into text.
func TextOf(symbols []Symbol) string {
	buf := make([]byte, 0, len(symbols))
	for _, symbol := range symbols {
		buf = utf8.AppendRune(buf, rune(symbol))
	}
	return string(buf)
}
