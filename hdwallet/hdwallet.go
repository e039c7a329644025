// Package hdwallet implements BIP-32 hierarchical deterministic key
// derivation over secp256k1.
package hdwallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Default derivation paths. Cosmos chains use coin type 118; Ethermint
// chains reuse Ethereum's coin type 60 so keys match Ethereum wallets.
const (
	DefaultCosmosPath   = "m/44'/118'/0'/0/0"
	DefaultEthereumPath = "m/44'/60'/0'/0/0"
)

// hardenedOffset is added to indices derived from the parent secret
// rather than its public key.
const hardenedOffset = uint32(1) << 31

var (
	// ErrInvalidPathSpec indicates a derivation path that does not match
	// m/<n>['](/<n>['])*.
	ErrInvalidPathSpec = errors.New("invalid hd wallet path")

	// ErrInvalidChildKey indicates derivation produced a scalar outside
	// [1, n-1]. The probability is negligible; per BIP-32 the caller
	// should move to the next index, but we surface it as an error.
	ErrInvalidChildKey = errors.New("derived key is not a valid scalar")
)

// PathNode is one segment of a derivation path.
type PathNode struct {
	Index    uint32
	Hardened bool
}

// MasterKeyFromSeed computes the BIP-32 master secret and chain code:
// HMAC-SHA512 keyed by "Bitcoin seed" over the seed, split in half.
func MasterKeyFromSeed(seed []byte) (secret, chainCode [32]byte, err error) {
	mac := hmac.New(sha512.New, []byte("Bitcoin seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)

	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sum[:32]); overflow || s.IsZero() {
		return secret, chainCode, fmt.Errorf("%w: master key", ErrInvalidChildKey)
	}
	s.Zero()

	copy(secret[:], sum[:32])
	copy(chainCode[:], sum[32:])
	return secret, chainCode, nil
}

// ChildKey derives one child from a parent secret and chain code.
// Hardened children commit to the parent secret; non-hardened children
// commit to the parent's compressed public key. The left HMAC half is
// added to the parent scalar modulo the curve order using the curve
// library's constant-time scalar type.
func ChildKey(parentSecret, parentChain [32]byte, index uint32, hardened bool) (child, chainCode [32]byte, err error) {
	mac := hmac.New(sha512.New, parentChain[:])

	var idx [4]byte
	if hardened {
		binary.BigEndian.PutUint32(idx[:], index+hardenedOffset)
		mac.Write([]byte{0x00})
		mac.Write(parentSecret[:])
	} else {
		binary.BigEndian.PutUint32(idx[:], index)
		priv := secp256k1.PrivKeyFromBytes(parentSecret[:])
		mac.Write(priv.PubKey().SerializeCompressed())
		priv.Zero()
	}
	mac.Write(idx[:])
	sum := mac.Sum(nil)

	var il, parent secp256k1.ModNScalar
	if overflow := il.SetByteSlice(sum[:32]); overflow {
		return child, chainCode, fmt.Errorf("%w: index %d", ErrInvalidChildKey, index)
	}
	parent.SetByteSlice(parentSecret[:])
	il.Add(&parent)
	parent.Zero()
	if il.IsZero() {
		return child, chainCode, fmt.Errorf("%w: index %d", ErrInvalidChildKey, index)
	}

	child = il.Bytes()
	il.Zero()
	copy(chainCode[:], sum[32:])
	return child, chainCode, nil
}

// ParsePath parses a derivation path of the form m/44'/118'/0'/0/0.
// Each segment is an unsigned integer below 2^31, optionally suffixed
// with ' for hardened derivation.
func ParsePath(path string) ([]PathNode, error) {
	segments := strings.Split(path, "/")
	if len(segments) < 2 || segments[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m/", ErrInvalidPathSpec, path)
	}

	nodes := make([]PathNode, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := strings.HasSuffix(seg, "'")
		if hardened {
			seg = strings.TrimSuffix(seg, "'")
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil || n >= uint64(hardenedOffset) {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidPathSpec, seg)
		}
		nodes = append(nodes, PathNode{Index: uint32(n), Hardened: hardened})
	}
	return nodes, nil
}

// DeriveSeed walks the parsed path from the seed's master key down to
// the final child secret.
func DeriveSeed(seed []byte, path string) ([32]byte, error) {
	nodes, err := ParsePath(path)
	if err != nil {
		return [32]byte{}, err
	}

	secret, chain, err := MasterKeyFromSeed(seed)
	if err != nil {
		return [32]byte{}, err
	}
	for _, node := range nodes {
		secret, chain, err = ChildKey(secret, chain, node.Index, node.Hardened)
		if err != nil {
			return [32]byte{}, err
		}
	}
	return secret, nil
}
