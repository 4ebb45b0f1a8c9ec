package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = 16 * 1024 * 1024 // 16 MiB

// ErrInvalidChunkSize indicates a non-positive chunk size.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// Reader reads a corpus file sequentially in fixed-size chunks.
//
// The sequence is lazy and non-restartable: open a new Reader to scan the
// same corpus again. A zero-length file yields io.EOF on the first Next,
// not an error.
type Reader struct {
	f         *os.File
	buf       []byte
	bytesRead uint64
	err       error
}

// Open opens the corpus at path for chunked reading. Open fails if the file
// cannot be opened; read failures surface from Next.
func Open(path string, chunkSize int) (*Reader, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}

	return &Reader{
		f:   f,
		buf: make([]byte, chunkSize),
	}, nil
}

// Next returns the next chunk of the corpus. The returned slice is only
// valid until the following call to Next. It returns io.EOF after the last
// chunk; any other error is fatal for the scan and must not be retried.
//
// The context is checked before each read so a cancelled analysis stops
// between chunks rather than scanning to end-of-file.
func (r *Reader) Next(ctx context.Context) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if err := ctx.Err(); err != nil {
		r.err = err
		return nil, err
	}

	n, err := io.ReadFull(r.f, r.buf)
	switch {
	case err == io.EOF:
		r.err = io.EOF
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		// Short final chunk.
		r.err = io.EOF
	case err != nil:
		r.err = fmt.Errorf("failed to read corpus at offset %d: %w", r.bytesRead, err)
		return nil, r.err
	}

	r.bytesRead += uint64(n)
	return r.buf[:n], nil
}

// BytesRead returns the total number of corpus bytes consumed so far.
// After Next returns a chunk, BytesRead is the absolute offset just past
// that chunk's final byte.
func (r *Reader) BytesRead() uint64 {
	return r.bytesRead
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}
