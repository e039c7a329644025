package mnemonic

import (
	"errors"
	"fmt"
)

// BIP-39 validation errors.
var (
	// ErrBadWordCount indicates a phrase whose word count is not one of
	// 12, 15, 18, 21 or 24.
	ErrBadWordCount = errors.New("mnemonic has an invalid word count")

	// ErrUnknownWord indicates a word absent from every supported list.
	ErrUnknownWord = errors.New("mnemonic contains an unknown word")

	// ErrBadEntropyBitCount indicates entropy that is not 128-256 bits
	// in 32-bit steps.
	ErrBadEntropyBitCount = errors.New("entropy must be 128-256 bits in 32-bit steps")

	// ErrInvalidChecksum indicates a phrase whose checksum bits do not
	// match its entropy.
	ErrInvalidChecksum = errors.New("mnemonic has an invalid checksum")

	// ErrAmbiguousWordList indicates a phrase whose words appear in more
	// than one supported list with no unique list among the matches.
	ErrAmbiguousWordList = errors.New("mnemonic matches multiple word lists")
)

func badWordCount(n int) error {
	return fmt.Errorf("%w: %d", ErrBadWordCount, n)
}

func unknownWord(w string) error {
	return fmt.Errorf("%w: %q", ErrUnknownWord, w)
}

func badEntropyBitCount(n int) error {
	return fmt.Errorf("%w: got %d", ErrBadEntropyBitCount, n)
}

func ambiguousWordList(langs []Language) error {
	return fmt.Errorf("%w: %v", ErrAmbiguousWordList, langs)
}
