// Package address implements bech32 account identifiers carrying a
// chain-specific human-readable prefix.
package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/blockberries/bramble/utils"
)

// Bech32 codec errors, classified per failure mode so callers can react
// to malformed input distinctly from wrong-size input.
var (
	// ErrBech32WrongLength indicates an encoded string or payload whose
	// length is outside the bech32 limits.
	ErrBech32WrongLength = errors.New("bech32 wrong length")

	// ErrBech32InvalidBase32 indicates a character outside the bech32
	// charset in the data part.
	ErrBech32InvalidBase32 = errors.New("bech32 invalid base32 character")

	// ErrBech32InvalidEncoding indicates a structural problem: bad
	// separator, invalid padding, or an unencodable HRP.
	ErrBech32InvalidEncoding = errors.New("bech32 invalid encoding")

	// ErrBech32MixedCase indicates mixed upper and lower case.
	ErrBech32MixedCase = errors.New("bech32 mixed case")

	// ErrBech32InvalidChecksum indicates a failed checksum verification.
	ErrBech32InvalidChecksum = errors.New("bech32 invalid checksum")
)

// Variant identifies the checksum flavor of a decoded bech32 string.
type Variant int

const (
	// VariantBech32 is the original BIP-173 checksum. All Cosmos
	// addresses and public keys use this variant.
	VariantBech32 Variant = iota

	// VariantBech32m is the BIP-350 checksum. Decoded for completeness
	// but never produced by this SDK.
	VariantBech32m
)

// Bech32Encode encodes payload bytes under the given HRP using the
// Bech32 (not Bech32m) variant.
func Bech32Encode(hrp string, payload []byte) (string, error) {
	if _, err := utils.NewPrefixString(hrp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBech32InvalidEncoding, err)
	}
	encoded, err := bech32.EncodeFromBase256(hrp, payload)
	if err != nil {
		return "", mapBech32Err(err)
	}
	return encoded, nil
}

// Bech32Decode decodes a bech32 string into its HRP, payload bytes and
// checksum variant, validating charset, case and checksum.
func Bech32Decode(s string) (string, []byte, Variant, error) {
	hrp, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return "", nil, 0, mapBech32Err(err)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, 0, mapBech32Err(err)
	}
	variant := VariantBech32
	if version == bech32.VersionM {
		variant = VariantBech32m
	}
	return hrp, payload, variant, nil
}

func mapBech32Err(err error) error {
	switch err.(type) {
	case bech32.ErrInvalidLength:
		return fmt.Errorf("%w: %v", ErrBech32WrongLength, err)
	case bech32.ErrNonCharsetChar, bech32.ErrInvalidCharacter:
		return fmt.Errorf("%w: %v", ErrBech32InvalidBase32, err)
	case bech32.ErrMixedCase:
		return fmt.Errorf("%w: %v", ErrBech32MixedCase, err)
	case bech32.ErrInvalidChecksum:
		return fmt.Errorf("%w: %v", ErrBech32InvalidChecksum, err)
	default:
		return fmt.Errorf("%w: %v", ErrBech32InvalidEncoding, err)
	}
}
