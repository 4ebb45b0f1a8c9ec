package scan

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.bin")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestScan_Validation(t *testing.T) {
	t.Run("empty secret rejected before I/O", func(t *testing.T) {
		// The path does not exist; validation must fail first.
		_, err := Scan(context.Background(), "/nonexistent/corpus", nil)
		assert.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("unreadable corpus fails", func(t *testing.T) {
		_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), []byte{1})
		assert.Error(t, err)
	})
}

func TestScan_EndiannessDuality(t *testing.T) {
	// Secret 0x0102 over a corpus holding only 0x0201: forward clean,
	// reversed leaked, aggregate leaked.
	path := writeCorpus(t, []byte{0x02, 0x01})
	v, err := Scan(context.Background(), path, []byte{0x01, 0x02})
	require.NoError(t, err)

	assert.False(t, v.Forward.Leaked)
	assert.True(t, v.Reversed.Leaked)
	assert.True(t, v.Leaked)
	assert.Equal(t, BoundaryFull, v.Reversed.Boundary.State)
	// Forward still sees its first byte (0x01 occurs once).
	assert.Equal(t, uint64(1), v.Forward.Counts.At(1))
	assert.Equal(t, BoundaryPartial, v.Forward.Boundary.State)
}

func TestScan_PalindromeSkipsReversed(t *testing.T) {
	path := writeCorpus(t, []byte{9, 9, 1, 2, 2, 1, 9})
	v, err := Scan(context.Background(), path, []byte{1, 2, 2, 1})
	require.NoError(t, err)

	assert.True(t, v.Reversed.Skipped)
	assert.Nil(t, v.Reversed.Counts)
	assert.True(t, v.Forward.Leaked)
	assert.True(t, v.Leaked)
}

func TestScan_SingleByteSkipsReversed(t *testing.T) {
	path := writeCorpus(t, []byte{0x41, 0x42})
	v, err := Scan(context.Background(), path, []byte{0x41})
	require.NoError(t, err)

	assert.True(t, v.Reversed.Skipped)
	assert.True(t, v.Forward.Leaked)
	assert.Equal(t, 1, v.Forward.Boundary.Depth)
}

func TestScan_PartialPrefix(t *testing.T) {
	// First three bytes of the secret survive, the fourth does not.
	secret := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	data := append([]byte{0x00}, 0xDE, 0xAD, 0xBE, 0x00, 0x00)
	path := writeCorpus(t, data)

	v, err := Scan(context.Background(), path, secret)
	require.NoError(t, err)

	assert.False(t, v.Leaked)
	assert.Equal(t, 3, v.Forward.Boundary.Depth)
	assert.Equal(t, BoundaryPartial, v.Forward.Boundary.State)
	assert.True(t, v.Forward.Counts.Monotonic())
}

func TestScan_EmptyCorpus(t *testing.T) {
	path := writeCorpus(t, nil)
	v, err := Scan(context.Background(), path, []byte{1, 2})
	require.NoError(t, err)

	assert.False(t, v.Leaked)
	assert.Equal(t, uint64(0), v.CorpusSize)
	assert.Equal(t, BoundaryNone, v.Forward.Boundary.State)
}

func TestScan_ChunkSizeTransparency(t *testing.T) {
	secret := []byte{0xAA, 0xBB, 0xCC}
	data := bytes.Repeat([]byte{0xAA, 0xBB, 0xCC, 0xAA}, 100)
	path := writeCorpus(t, data)

	base, err := Scan(context.Background(), path, secret, WithChunkSize(len(data)))
	require.NoError(t, err)

	for _, chunkSize := range []int{3, 4, 7, 64} {
		v, err := Scan(context.Background(), path, secret, WithChunkSize(chunkSize))
		require.NoError(t, err)
		assert.Equal(t, base.Forward.Counts, v.Forward.Counts, "chunk size %d", chunkSize)
		assert.Equal(t, base.Reversed.Counts, v.Reversed.Counts, "chunk size %d", chunkSize)
	}
}

func TestScan_VerdictMetadata(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	path := writeCorpus(t, data)

	v, err := Scan(context.Background(), path, []byte{1, 2})
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, path, v.CorpusPath)
	assert.Equal(t, uint64(len(data)), v.CorpusSize)
	assert.Equal(t, 2, v.SecretLen)
	assert.Equal(t, Forward, v.Forward.Orientation)
	assert.Equal(t, Reversed, v.Reversed.Orientation)
}

func TestScan_CancelledContext(t *testing.T) {
	path := writeCorpus(t, bytes.Repeat([]byte{0}, 1024))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, path, []byte{1, 2}, WithChunkSize(16))
	assert.ErrorIs(t, err, context.Canceled)
}
