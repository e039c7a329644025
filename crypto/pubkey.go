// Package crypto implements the key families of Cosmos-SDK-style
// chains over secp256k1: standard Cosmos keys and Ethereum-compatible
// Ethermint keys. Both share curve arithmetic and differ only in the
// digest they sign and the address rule their public keys follow.
package crypto

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secp256k1ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/blockberries/bramble/address"
	"github.com/blockberries/bramble/utils"
	"github.com/blockberries/bramble/wire"
)

// CompressedKeyLength is the serialized size of a secp256k1 public key.
const CompressedKeyLength = 33

// aminoSecp256k1Tag is the legacy amino prefix for compressed secp256k1
// public keys; bech32-rendered keys carry it before the key bytes.
var aminoSecp256k1Tag = []byte{0xEB, 0x5A, 0xE9, 0x87, 0x21}

const aminoKeyLength = 5 + CompressedKeyLength

// PublicKey is a secp256k1 public key bound to a key family. The family
// decides the account address rule and the digest used for signature
// verification.
type PublicKey interface {
	// Bytes returns the 33-byte compressed point.
	Bytes() []byte

	// Family returns the key's family.
	Family() KeyFamily

	// Address derives the account address under the given bech32 prefix.
	Address(prefix string) (address.Address, error)

	// ToAmino returns the legacy amino encoding: the secp256k1 tag
	// followed by the compressed point.
	ToAmino() []byte

	// ToBech32 renders the amino encoding under the given HRP,
	// conventionally the chain prefix with a "pub" suffix.
	ToBech32(hrp string) (string, error)

	// ToAny packs the key into the Any slot of a SignerInfo.
	ToAny() (wire.Any, error)

	// Verify checks a signature produced by the matching private key
	// over data. The family's digest is applied internally.
	Verify(data, signature []byte) bool

	// Equals compares family and key bytes in constant time.
	Equals(other PublicKey) bool

	// String returns the Base64-encoded compressed point.
	String() string
}

// keccak256 is the digest Ethereum-compatible keys sign and derive
// addresses with.
func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

type publicKey struct {
	key    *secp256k1.PublicKey
	family KeyFamily
}

// PublicKeyFromBytes parses a 33-byte compressed point into a public
// key of the given family.
func PublicKeyFromBytes(family KeyFamily, data []byte) (PublicKey, error) {
	if len(data) != CompressedKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, CompressedKeyLength, len(data))
	}
	key, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &publicKey{key: key, family: family}, nil
}

// PublicKeyFromAmino parses the 38-byte legacy amino form: the
// secp256k1 tag followed by the compressed point.
func PublicKeyFromAmino(family KeyFamily, data []byte) (PublicKey, error) {
	if len(data) != aminoKeyLength {
		return nil, fmt.Errorf("%w: expected %d amino bytes, got %d", ErrInvalidPublicKey, aminoKeyLength, len(data))
	}
	if !bytes.Equal(data[:len(aminoSecp256k1Tag)], aminoSecp256k1Tag) {
		return nil, fmt.Errorf("%w: bad amino prefix", ErrInvalidPublicKey)
	}
	return PublicKeyFromBytes(family, data[len(aminoSecp256k1Tag):])
}

// ParsePublicKey accepts a public key as bech32 (amino form), hex, or
// Base64, tried in that order.
func ParsePublicKey(family KeyFamily, s string) (PublicKey, error) {
	if _, payload, _, err := address.Bech32Decode(s); err == nil {
		return PublicKeyFromAmino(family, payload)
	}
	if utils.IsHex(s) {
		raw, err := utils.HexToBytes(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		return PublicKeyFromBytes(family, raw)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: not bech32, hex or base64", ErrInvalidPublicKey)
	}
	return PublicKeyFromBytes(family, raw)
}

func (k *publicKey) Bytes() []byte {
	return k.key.SerializeCompressed()
}

func (k *publicKey) Family() KeyFamily {
	return k.family
}

// Address derives the account address. Cosmos keys hash the compressed
// point with SHA-256 then RIPEMD-160; Ethermint keys take the last 20
// bytes of the Keccak-256 hash of the uncompressed point.
func (k *publicKey) Address(prefix string) (address.Address, error) {
	switch k.family {
	case FamilyEthermint:
		uncompressed := k.key.SerializeUncompressed()
		sum := keccak256(uncompressed[1:])
		return address.FromBytes(sum[len(sum)-address.BaseLength:], prefix)
	default:
		sum := sha256.Sum256(k.key.SerializeCompressed())
		hasher := ripemd160.New()
		hasher.Write(sum[:])
		return address.FromBytes(hasher.Sum(nil), prefix)
	}
}

func (k *publicKey) ToAmino() []byte {
	out := make([]byte, 0, aminoKeyLength)
	out = append(out, aminoSecp256k1Tag...)
	return append(out, k.key.SerializeCompressed()...)
}

func (k *publicKey) ToBech32(hrp string) (string, error) {
	return address.Bech32Encode(hrp, k.ToAmino())
}

func (k *publicKey) ToAny() (wire.Any, error) {
	pk := wire.PubKey{Key: k.key.SerializeCompressed()}
	value, err := pk.Marshal()
	if err != nil {
		return wire.Any{}, err
	}
	return wire.Any{TypeURL: k.family.TypeURL(), Value: value}, nil
}

// Verify checks a signature over data. Cosmos signatures are 64-byte
// r||s over the SHA-256 digest; Ethermint signatures are 65-byte
// r||s||v over the Keccak-256 digest, with the recovery byte ignored.
func (k *publicKey) Verify(data, signature []byte) bool {
	var hash []byte
	switch k.family {
	case FamilyEthermint:
		if len(signature) == 65 {
			signature = signature[:64]
		}
		hash = keccak256(data)
	default:
		sum := sha256.Sum256(data)
		hash = sum[:]
	}
	if len(signature) != 64 {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(signature[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(signature[32:]); overflow {
		return false
	}
	return secp256k1ecdsa.NewSignature(&r, &s).Verify(hash, k.key)
}

func (k *publicKey) Equals(other PublicKey) bool {
	if other == nil || other.Family() != k.family {
		return false
	}
	return subtle.ConstantTimeCompare(k.Bytes(), other.Bytes()) == 1
}

func (k *publicKey) String() string {
	return base64.StdEncoding.EncodeToString(k.Bytes())
}
