package scan

import "errors"

// ErrEmptySecret indicates an empty secret was supplied.
// Rejected before any corpus I/O starts.
var ErrEmptySecret = errors.New("secret cannot be empty")

// MaxPracticalSecretLen is advisory, not enforced: secrets probed in
// practice are 1-64 bytes (u8 through 512-bit key material).
const MaxPracticalSecretLen = 64

// Secret is the sensitive byte sequence whose presence is probed.
// Immutable once constructed.
type Secret struct {
	fwd []byte
}

// NewSecret constructs a Secret from raw bytes. The bytes are copied so
// later mutation of the caller's slice cannot change what is scanned.
func NewSecret(b []byte) (Secret, error) {
	if len(b) == 0 {
		return Secret{}, ErrEmptySecret
	}
	fwd := make([]byte, len(b))
	copy(fwd, b)
	return Secret{fwd: fwd}, nil
}

// Len returns the secret length N in bytes.
func (s Secret) Len() int {
	return len(s.fwd)
}

// Bytes returns the secret in the orientation it was supplied.
// The returned slice must not be modified.
func (s Secret) Bytes() []byte {
	return s.fwd
}

// Reversed returns a byte-order-reversed copy of the secret.
func (s Secret) Reversed() []byte {
	rev := make([]byte, len(s.fwd))
	for i, b := range s.fwd {
		rev[len(s.fwd)-1-i] = b
	}
	return rev
}

// ReversalRedundant reports whether scanning the reversed orientation can
// be skipped: a single byte or a palindrome reads the same both ways.
func (s Secret) ReversalRedundant() bool {
	for i, j := 0, len(s.fwd)-1; i < j; i, j = i+1, j-1 {
		if s.fwd[i] != s.fwd[j] {
			return false
		}
	}
	return true
}
