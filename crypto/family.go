package crypto

import "fmt"

// KeyFamily selects how a secp256k1 key digests sign bytes and derives
// its account address. Both families share the curve; they differ in
// hash functions and address rules.
type KeyFamily uint8

const (
	// FamilyCosmos is the standard Cosmos SDK key: SHA-256 digests and
	// RIPEMD160(SHA256(pubkey)) addresses.
	FamilyCosmos KeyFamily = iota

	// FamilyEthermint is the Ethereum-compatible key used by Ethermint
	// chains: Keccak-256 digests and Ethereum-style addresses.
	FamilyEthermint
)

// String returns the family name.
func (f KeyFamily) String() string {
	switch f {
	case FamilyCosmos:
		return "secp256k1"
	case FamilyEthermint:
		return "eth_secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// ParseKeyFamily parses a family name as produced by String.
func ParseKeyFamily(s string) (KeyFamily, error) {
	switch s {
	case "secp256k1":
		return FamilyCosmos, nil
	case "eth_secp256k1":
		return FamilyEthermint, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFamily, s)
	}
}

// DefaultHDPath returns the BIP-44 derivation path keys of this family
// use by default.
func (f KeyFamily) DefaultHDPath() string {
	if f == FamilyEthermint {
		return "m/44'/60'/0'/0/0"
	}
	return "m/44'/118'/0'/0/0"
}

// TypeURL returns the protobuf Any type URL for public keys of this
// family.
func (f KeyFamily) TypeURL() string {
	if f == FamilyEthermint {
		return "/ethermint.crypto.v1.ethsecp256k1.PubKey"
	}
	return "/cosmos.crypto.secp256k1.PubKey"
}
