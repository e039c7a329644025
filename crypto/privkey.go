package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"math/big"
	"runtime"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secp256k1ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/blockberries/bramble/hdwallet"
	"github.com/blockberries/bramble/mnemonic"
	"github.com/blockberries/bramble/types"
	"github.com/blockberries/bramble/utils"
)

// Zeroize securely overwrites a byte slice with zeros. subtle.XORBytes
// cannot be optimized away and KeepAlive prevents the slice from being
// treated as dead after zeroing.
func Zeroize(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.XORBytes(b, b, b)
	runtime.KeepAlive(b)
}

// PrivateKey is a secp256k1 signing key bound to a key family.
type PrivateKey interface {
	// Bytes returns the 32-byte scalar.
	// WARNING: Handle with care. Consider zeroing after use.
	Bytes() []byte

	// Family returns the key's family.
	Family() KeyFamily

	// PublicKey returns the corresponding public key.
	PublicKey() PublicKey

	// Sign signs data with the family's digest and signature layout:
	// 64-byte r||s for Cosmos keys, 65-byte r||s||v for Ethermint keys.
	Sign(data []byte) ([]byte, error)

	// SignStdMsg assembles, signs and serializes a complete transaction
	// from messages and signing arguments, returning TxRaw bytes ready
	// to broadcast.
	SignStdMsg(msgs []types.Msg, args types.MessageArgs, memo string) ([]byte, error)

	// Zeroize overwrites the private key material with zeros. The key is
	// unusable afterwards.
	Zeroize()
}

type privateKey struct {
	key    *secp256k1.PrivateKey
	family KeyFamily
}

// PrivateKeyFromBytes creates a private key from a raw 32-byte scalar.
// The scalar must be in [1, n-1].
func PrivateKeyFromBytes(family KeyFamily, data []byte) (PrivateKey, error) {
	if len(data) != 32 {
		return nil, fmt.Errorf("%w: expected 32 bytes, got %d", ErrInvalidPrivateKey, len(data))
	}

	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(data)
	zero := s.IsZero()
	s.Zero()
	if overflow {
		return nil, fmt.Errorf("%w: scalar exceeds curve order", ErrInvalidPrivateKey)
	}
	if zero {
		return nil, ErrZeroPrivateKey
	}
	return &privateKey{key: secp256k1.PrivKeyFromBytes(data), family: family}, nil
}

// GeneratePrivateKey generates a fresh random private key.
func GeneratePrivateKey(family KeyFamily) (PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secp256k1 key: %w", err)
	}
	return &privateKey{key: key, family: family}, nil
}

// PrivateKeyFromSecret derives a key deterministically from arbitrary
// secret bytes: SHA-256(secret) reduced into [1, n-1].
//
// This is a legacy scheme for test fixtures and throwaway accounts;
// real wallets should derive from a mnemonic.
func PrivateKeyFromSecret(family KeyFamily, secret []byte) (PrivateKey, error) {
	sum := sha256.Sum256(secret)

	n := secp256k1.S256().N
	scalar := new(big.Int).SetBytes(sum[:])
	scalar.Mod(scalar, new(big.Int).Sub(n, big.NewInt(1)))
	scalar.Add(scalar, big.NewInt(1))

	raw := make([]byte, 32)
	scalar.FillBytes(raw)
	defer Zeroize(raw)
	scalar.SetInt64(0)

	return PrivateKeyFromBytes(family, raw)
}

// PrivateKeyFromPhrase derives a key from a BIP-39 mnemonic phrase
// using the family's default BIP-44 path.
func PrivateKeyFromPhrase(family KeyFamily, phrase, passphrase string) (PrivateKey, error) {
	return PrivateKeyFromHDPath(family, family.DefaultHDPath(), phrase, passphrase)
}

// PrivateKeyFromHDPath derives a key from a BIP-39 mnemonic phrase
// along an explicit BIP-32 derivation path.
func PrivateKeyFromHDPath(family KeyFamily, path, phrase, passphrase string) (PrivateKey, error) {
	m, err := mnemonic.FromPhrase(phrase)
	if err != nil {
		return nil, err
	}
	seed := m.ToSeed(passphrase)
	defer Zeroize(seed)

	secret, err := hdwallet.DeriveSeed(seed, path)
	if err != nil {
		return nil, err
	}
	defer Zeroize(secret[:])

	return PrivateKeyFromBytes(family, secret[:])
}

// ParsePrivateKey accepts either a 64-character hex scalar (an
// optional 0x prefix is allowed) or a mnemonic phrase (derived along
// the family's default path). Hex strings of any other length are not
// raw keys and are treated as phrases.
func ParsePrivateKey(family KeyFamily, s string) (PrivateKey, error) {
	s = strings.TrimSpace(s)
	if hexStr := strings.TrimPrefix(s, "0x"); len(hexStr) == 64 && utils.IsHex(hexStr) {
		raw, err := utils.HexToBytes(hexStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
		}
		defer Zeroize(raw)
		return PrivateKeyFromBytes(family, raw)
	}
	return PrivateKeyFromPhrase(family, s, "")
}

func (k *privateKey) Bytes() []byte {
	return k.key.Serialize()
}

func (k *privateKey) Family() KeyFamily {
	return k.family
}

func (k *privateKey) PublicKey() PublicKey {
	return &publicKey{key: k.key.PubKey(), family: k.family}
}

// Sign signs data. Cosmos keys sign the SHA-256 digest with RFC 6979
// deterministic ECDSA and return 64-byte r||s. Ethermint keys sign the
// Keccak-256 digest and return the recoverable 65-byte r||s||v form
// with v in {0, 1}.
func (k *privateKey) Sign(data []byte) ([]byte, error) {
	if k.family == FamilyEthermint {
		hash := keccak256(data)
		compact := secp256k1ecdsa.SignCompact(k.key, hash, false)

		// SignCompact puts the recovery byte first as 27+v; the chain
		// expects it last as a bare 0 or 1.
		signature := make([]byte, 65)
		copy(signature[:64], compact[1:])
		signature[64] = compact[0] - 27
		return signature, nil
	}

	hash := sha256.Sum256(data)
	sig := secp256k1ecdsa.Sign(k.key, hash[:])

	r := sig.R()
	s := sig.S()
	signature := make([]byte, 64)
	rBytes := r.Bytes()
	sBytes := s.Bytes()
	copy(signature[32-len(rBytes):32], rBytes[:])
	copy(signature[64-len(sBytes):64], sBytes[:])
	return signature, nil
}

func (k *privateKey) SignStdMsg(msgs []types.Msg, args types.MessageArgs, memo string) ([]byte, error) {
	return signTx(k, msgs, args, memo)
}

func (k *privateKey) Zeroize() {
	k.key.Zero()
}
