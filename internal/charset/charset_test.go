package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	type testRow struct {
		name    string
		charset string
		data    []byte
		expect  string
	}

	testData := [...]testRow{
		{name: "utf-8", charset: "utf-8", data: []byte("héllo"), expect: "héllo"},
		{name: "utf-8-bom", charset: "utf-8", data: []byte("\xef\xbb\xbfabc"), expect: "abc"},
		{name: "latin1", charset: "latin1", data: []byte{'c', 'a', 'f', 0xe9}, expect: "café"},
		{name: "utf-16le-bom", charset: "utf-16le", data: []byte{0xff, 0xfe, 'h', 0, 'i', 0}, expect: "hi"},
		{name: "utf-16be-label-le-bom", charset: "utf-16be", data: []byte{0xff, 0xfe, 'h', 0, 'i', 0}, expect: "hi"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := Decode(row.charset, row.data)
			require.NoError(t, err)
			require.Equal(t, row.expect, actual)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("no-such-charset", []byte("x"))
	require.Error(t, err)

	_, err = Decode("utf-8", []byte("a\xffb"))
	require.Error(t, err)
}
