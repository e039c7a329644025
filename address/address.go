package address

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/blockberries/bramble/utils"
)

// DefaultPrefix is the HRP assumed when parsing an address from plain
// hex, where no prefix information is available.
const DefaultPrefix = "cosmos"

const (
	// BaseLength is the payload size of a standard account address.
	BaseLength = 20

	// DerivedLength is the payload size of a derived (ICA/group-style)
	// account address.
	DerivedLength = 32
)

// ErrBytesWrongLength indicates an address payload that is neither 20
// nor 32 bytes.
var ErrBytesWrongLength = errors.New("address bytes must be 20 or 32 bytes long")

// Address is an account identifier: a 20-byte base or 32-byte derived
// payload together with the bech32 prefix it was created under.
// Addresses are immutable value objects.
type Address struct {
	payload []byte
	prefix  utils.PrefixString
}

// FromBytes builds an Address from a raw payload of exactly 20 or 32
// bytes and a prefix.
func FromBytes(payload []byte, prefix string) (Address, error) {
	if len(payload) != BaseLength && len(payload) != DerivedLength {
		return Address{}, fmt.Errorf("%w: got %d", ErrBytesWrongLength, len(payload))
	}
	p, err := utils.NewPrefixString(prefix)
	if err != nil {
		return Address{}, err
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return Address{payload: buf, prefix: p}, nil
}

// FromBech32 decodes a bech32 address string; the decoded HRP becomes
// the stored prefix.
func FromBech32(s string) (Address, error) {
	hrp, payload, _, err := Bech32Decode(s)
	if err != nil {
		return Address{}, err
	}
	return FromBytes(payload, hrp)
}

// FromHex decodes a bare hex address and pairs it with the given prefix.
func FromHex(s, prefix string) (Address, error) {
	raw, err := utils.HexToBytes(s)
	if err != nil {
		return Address{}, err
	}
	return FromBytes(raw, prefix)
}

// Parse accepts either a bech32 or a hex address string. A string made
// up entirely of hex characters is treated as hex under DefaultPrefix;
// anything else is decoded as bech32.
func Parse(s string) (Address, error) {
	if utils.IsHex(s) {
		return FromHex(s, DefaultPrefix)
	}
	return FromBech32(s)
}

// ModuleAddress derives the deterministic account address of a chain
// module: SHA-256(name) truncated to 20 bytes.
func ModuleAddress(name, prefix string) (Address, error) {
	sum := sha256.Sum256([]byte(name))
	return FromBytes(sum[:BaseLength], prefix)
}

// Bytes returns a copy of the address payload.
func (a Address) Bytes() []byte {
	out := make([]byte, len(a.payload))
	copy(out, a.payload)
	return out
}

// Prefix returns the prefix the address was created under.
func (a Address) Prefix() string {
	return a.prefix.String()
}

// IsDerived reports whether the address carries a 32-byte derived
// payload rather than a standard 20-byte one.
func (a Address) IsDerived() bool {
	return len(a.payload) == DerivedLength
}

// IsEmpty reports whether the address is the zero value.
func (a Address) IsEmpty() bool {
	return len(a.payload) == 0
}

// ToBech32 renders the address under the supplied HRP. The stored
// prefix is not modified.
func (a Address) ToBech32(hrp string) (string, error) {
	return Bech32Encode(hrp, a.payload)
}

// String renders the address under its stored prefix. An address built
// by this package always re-encodes cleanly, so errors degrade to an
// empty string.
func (a Address) String() string {
	s, err := a.ToBech32(a.prefix.String())
	if err != nil {
		return ""
	}
	return s
}

// Equal compares payload and prefix.
func (a Address) Equal(other Address) bool {
	return a.prefix == other.prefix && bytes.Equal(a.payload, other.payload)
}
