package huffle

import (
	"errors"
	"testing"
)

func TestCode_Append(t *testing.T) {
	var hc Code
	for _, bit := range []bool{true, false, true, true} {
		hc = hc.Append(bit)
	}
	expect := MakeCode(4, 0xb)
	if hc != expect {
		t.Errorf("wrong code:\n\texpect: %v\n\tactual: %v", expect, hc)
	}
	if actual := hc.Bitstring(); actual != "1011" {
		t.Errorf("wrong bits:\n\texpect: 1011\n\tactual: %s", actual)
	}
}

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, expect: `""`},
		{size: 1, bits: 0x00, expect: `"0"`},
		{size: 1, bits: 0x01, expect: `"1"`},
		{size: 4, bits: 0x03, expect: `"0011"`},
		{size: 3, bits: 0xff, expect: `"111"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(row.expect, func(t *testing.T) {
			actual := hc.String()
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // "1011"

	type testRow struct {
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{prefix: Code{}, expect: true},
		{prefix: MakeCode(1, 0x1), expect: true},
		{prefix: MakeCode(1, 0x0), expect: false},
		{prefix: MakeCode(3, 0x5), expect: true},
		{prefix: MakeCode(3, 0x4), expect: false},
		{prefix: MakeCode(4, 0xb), expect: true},
		{prefix: MakeCode(5, 0x16), expect: false},
	}
	for _, row := range testData {
		t.Run(row.prefix.String(), func(t *testing.T) {
			if actual := hc.HasPrefix(row.prefix); actual != row.expect {
				t.Errorf("%v.HasPrefix(%v): expected %v, got %v", hc, row.prefix, row.expect, actual)
			}
		})
	}
}

func TestBitstring_Validate(t *testing.T) {
	if err := Bitstring("").Validate(); err != nil {
		t.Errorf("empty: unexpected error: %v", err)
	}
	if err := Bitstring("0110").Validate(); err != nil {
		t.Errorf("0110: unexpected error: %v", err)
	}
	if err := Bitstring("01a0").Validate(); !errors.Is(err, ErrInvalidBitstring) {
		t.Errorf("01a0: expected ErrInvalidBitstring, got %v", err)
	}
}
