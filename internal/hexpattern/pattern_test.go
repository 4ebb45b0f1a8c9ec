package hexpattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr error
	}{
		{"plain lowercase", "deadbeef", []byte{0xDE, 0xAD, 0xBE, 0xEF}, nil},
		{"uppercase", "DEADBEEF", []byte{0xDE, 0xAD, 0xBE, 0xEF}, nil},
		{"0x prefix", "0x0102", []byte{0x01, 0x02}, nil},
		{"surrounding whitespace", "  cafe\n", []byte{0xCA, 0xFE}, nil},
		{"interior whitespace", "ca fe\tba be", []byte{0xCA, 0xFE, 0xBA, 0xBE}, nil},
		{"single byte", "aa", []byte{0xAA}, nil},
		{"empty", "", nil, ErrEmptyPattern},
		{"whitespace only", "  \n\t", nil, ErrEmptyPattern},
		{"bare 0x", "0x", nil, ErrEmptyPattern},
		{"odd digits", "abc", nil, ErrOddLength},
		{"non-hex", "zz11", nil, ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.hex")
		require.NoError(t, os.WriteFile(path, []byte("0xDEAD beef\n"), 0o600))

		got, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "nope.hex"))
		assert.Error(t, err)
	})

	t.Run("invalid content names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.hex")
		require.NoError(t, os.WriteFile(path, []byte("xyz"), 0o600))

		_, err := ReadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.hex")
	})
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "u8", TypeLabel(1))
	assert.Equal(t, "u16", TypeLabel(2))
	assert.Equal(t, "u32", TypeLabel(4))
	assert.Equal(t, "u64", TypeLabel(8))
	assert.Equal(t, "3-byte value", TypeLabel(3))
	assert.Equal(t, "32-byte value", TypeLabel(32))
}
