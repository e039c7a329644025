// Package utils provides byte and string helpers shared across the SDK.
package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Hex decoding errors. HexToBytes reports exactly which stage failed so
// callers can distinguish malformed input from wrong-size input.
var (
	// ErrHexUtf8 indicates the input was not valid UTF-8 text.
	ErrHexUtf8 = errors.New("hex string is not valid utf-8")

	// ErrHexParseInt indicates a byte pair could not be parsed as base-16.
	ErrHexParseInt = errors.New("hex string contains a non-hex character")

	// ErrHexWrongLength indicates an odd number of hex characters.
	ErrHexWrongLength = errors.New("hex string has an odd length")
)

// HexToBytes decodes a hexadecimal string into bytes. An optional "0x"
// prefix is stripped. Decoding is case-insensitive.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %q", ErrHexUtf8, s)
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrHexWrongLength, len(s))
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrHexParseInt, s[i:i+2])
		}
		out[i/2] = byte(v)
	}
	return out, nil
}

// BytesToHex encodes bytes as a lowercase hexadecimal string.
func BytesToHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, v := range b {
		fmt.Fprintf(&sb, "%02x", v)
	}
	return sb.String()
}

// BytesToHexUpper encodes bytes as an uppercase hexadecimal string.
// Transaction hashes are conventionally rendered this way.
func BytesToHexUpper(b []byte) string {
	return strings.ToUpper(BytesToHex(b))
}

// IsHex reports whether every character of s is a hexadecimal digit.
// An empty string is not considered hex.
func IsHex(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
