// Package charset turns raw input bytes into UTF-8 text.
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Lookup resolves a charset label such as "utf-8", "latin1" or "shift_jis"
// using the WHATWG Encoding Standard names.
func Lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	return enc, nil
}

// Decode converts data from the named charset to UTF-8.  A leading byte
// order mark is honored and stripped.  For UTF-8 input, invalid sequences
// are an error rather than being replaced.
func Decode(name string, data []byte) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		data = trimBOM(data)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("input is not valid UTF-8")
		}
		return string(data), nil
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

func trimBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xef && data[1] == 0xbb && data[2] == 0xbf {
		return data[3:]
	}
	return data
}
