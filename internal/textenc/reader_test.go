package textenc_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinio/brillo/internal/textenc"
)

func TestNewReader_UTF8Passthrough(t *testing.T) {
	input := "name,budget\nCafé Rebrand,5000\n"

	r, err := textenc.NewReader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewReader_Windows1252(t *testing.T) {
	// Windows-1252 "Café,São Paulo\n": é = 0xE9, ã = 0xE3.
	input := []byte{'C', 'a', 'f', 0xE9, ',', 'S', 0xE3, 'o', ' ', 'P', 'a', 'u', 'l', 'o', '\n'}

	r, err := textenc.NewReader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Café,São Paulo\n", string(got))
}

func TestNewReader_UTF8BOMStripped(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("client_name,amount\n")...)

	r, err := textenc.NewReader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "client_name,amount\n", string(got))
}

func TestDecodeString(t *testing.T) {
	got, err := textenc.DecodeString([]byte("name,status\nWebsite,active\n"))
	require.NoError(t, err)
	assert.Equal(t, "name,status\nWebsite,active\n", got)
}
