package utils

import (
	"errors"
	"fmt"
)

// MaxPrefixLength bounds the human-readable prefix carried by addresses
// and public keys. Bech32 allows HRPs up to 83 characters, but chain
// prefixes in practice are short; 32 keeps the type embeddable in
// fixed-size structures.
const MaxPrefixLength = 32

var (
	// ErrPrefixTooLong indicates a prefix over MaxPrefixLength characters.
	ErrPrefixTooLong = errors.New("prefix exceeds maximum length")

	// ErrPrefixEmpty indicates an empty prefix.
	ErrPrefixEmpty = errors.New("prefix is empty")

	// ErrPrefixCharset indicates a character outside the bech32 HRP range.
	ErrPrefixCharset = errors.New("prefix contains invalid character")
)

// PrefixString is a bounded-length ASCII string used as a bech32
// human-readable part. The zero value is invalid; construct with
// NewPrefixString.
type PrefixString string

// NewPrefixString validates and returns a PrefixString.
// Valid HRP characters are ASCII 33-126; uppercase is rejected to keep
// a single canonical form.
func NewPrefixString(s string) (PrefixString, error) {
	if s == "" {
		return "", ErrPrefixEmpty
	}
	if len(s) > MaxPrefixLength {
		return "", fmt.Errorf("%w: %d > %d", ErrPrefixTooLong, len(s), MaxPrefixLength)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 || (c >= 'A' && c <= 'Z') {
			return "", fmt.Errorf("%w: %q", ErrPrefixCharset, c)
		}
	}
	return PrefixString(s), nil
}

func (p PrefixString) String() string {
	return string(p)
}
