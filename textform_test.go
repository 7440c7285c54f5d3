package huffle

import (
	"errors"
	"testing"
)

func TestFormatText(t *testing.T) {
	expect := "5/0b0a11110"
	if actual := FormatText("0b0a1", "1110"); actual != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	header, bits, err := ParseText(expect)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if header != "0b0a1" || bits != "1110" {
		t.Errorf("wrong parts: %q %q", header, bits)
	}
}

func TestFormatText_MultibyteHeader(t *testing.T) {
	// The length counts bytes, not runes; a '/' payload stays in the header.
	text := FormatText("0€0/1", "01")
	if text != "7/0€0/101" {
		t.Errorf("wrong output: %s", text)
	}
	header, bits, err := ParseText(text)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if header != "0€0/1" || bits != "01" {
		t.Errorf("wrong parts: %q %q", header, bits)
	}
}

func TestParseText_Malformed(t *testing.T) {
	type testRow struct {
		name string
		text string
		err  error
	}

	testData := [...]testRow{
		{name: "no-separator", text: "0b0a1", err: ErrMalformedContainer},
		{name: "not-a-number", text: "x/0b0a1", err: ErrMalformedContainer},
		{name: "negative", text: "-1/0b0a1", err: ErrMalformedContainer},
		{name: "overrun", text: "9/0b0a1", err: ErrMalformedContainer},
		{name: "bad-bits", text: "5/0b0a1012", err: ErrInvalidBitstring},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := ParseText(row.text)
			if !errors.Is(err, row.err) {
				t.Errorf("expected %v, got %v", row.err, err)
			}
		})
	}
}
