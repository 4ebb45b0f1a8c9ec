// Package hexpattern reads and validates hex-encoded secret patterns.
//
// Patterns arrive as hex text, typically written to a file next to the
// captured snapshot: an optional "0x" prefix, upper or lower case, with
// whitespace tolerated anywhere. The decoded bytes are the secret in the
// byte order it was written, so a numeric value reads as big-endian.
package hexpattern

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Validation errors.
var (
	// ErrEmptyPattern indicates the pattern text held no hex digits.
	ErrEmptyPattern = errors.New("pattern is empty")

	// ErrOddLength indicates an odd number of hex digits.
	ErrOddLength = errors.New("pattern has an odd number of hex digits")

	// ErrInvalidHex indicates a non-hex character in the pattern.
	ErrInvalidHex = errors.New("pattern contains non-hex characters")
)

// intTypeNames labels standard integer widths.
var intTypeNames = map[int]string{
	1: "u8",
	2: "u16",
	4: "u32",
	8: "u64",
}

// Parse decodes hex pattern text into raw bytes.
func Parse(s string) ([]byte, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0x")
	s = strings.Join(strings.Fields(s), "")

	if len(s) == 0 {
		return nil, ErrEmptyPattern
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrOddLength, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// ReadFile reads a hex pattern from a text file.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}
	b, err := Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern in %s: %w", path, err)
	}
	return b, nil
}

// TypeLabel names the integer type a pattern of size bytes would hold:
// u8, u16, u32, u64 for the standard widths, otherwise "<size>-byte value".
func TypeLabel(size int) string {
	if name, ok := intTypeNames[size]; ok {
		return name
	}
	return fmt.Sprintf("%d-byte value", size)
}
