package crypto

import (
	"fmt"
	"strings"
)

// KeyStore is named storage for wallet keys. Implementations must be
// safe for concurrent use and return defensive copies.
type KeyStore interface {
	// Store saves a key under a name. Names are unique per store.
	Store(name string, key StoredKey) error

	// Load retrieves a key by name. Returns ErrKeyStoreNotFound if the
	// key does not exist. The caller should Wipe the result when done.
	Load(name string) (StoredKey, error)

	// Delete removes a key. Returns ErrKeyStoreNotFound if absent.
	Delete(name string) error

	// List returns all stored key names in no particular order.
	List() ([]string, error)

	// Close releases the store. Operations after Close return
	// ErrKeyStoreClosed.
	Close() error
}

// StoredKey is a wallet key at rest: the 32-byte scalar plus the family
// needed to reconstruct a PrivateKey. Salt and Nonce are only populated
// by stores that encrypt at the application layer.
type StoredKey struct {
	Name        string
	Family      KeyFamily
	PubKey      []byte
	PrivKeyData []byte
	Salt        []byte
	Nonce       []byte
}

// NewStoredKey snapshots a private key for storage.
func NewStoredKey(name string, key PrivateKey) StoredKey {
	return StoredKey{
		Name:        name,
		Family:      key.Family(),
		PubKey:      key.PublicKey().Bytes(),
		PrivKeyData: key.Bytes(),
	}
}

// PrivateKey reconstructs the signing key from the stored material.
func (k StoredKey) PrivateKey() (PrivateKey, error) {
	return PrivateKeyFromBytes(k.Family, k.PrivKeyData)
}

// Wipe zeroes the sensitive fields.
func (k *StoredKey) Wipe() {
	Zeroize(k.PrivKeyData)
	Zeroize(k.Salt)
	Zeroize(k.Nonce)
}

// clone deep-copies a stored key so callers cannot mutate store state.
func (k StoredKey) clone() StoredKey {
	cp := StoredKey{Name: k.Name, Family: k.Family}
	if k.PubKey != nil {
		cp.PubKey = append([]byte(nil), k.PubKey...)
	}
	if k.PrivKeyData != nil {
		cp.PrivKeyData = append([]byte(nil), k.PrivKeyData...)
	}
	if k.Salt != nil {
		cp.Salt = append([]byte(nil), k.Salt...)
	}
	if k.Nonce != nil {
		cp.Nonce = append([]byte(nil), k.Nonce...)
	}
	return cp
}

// validateKeyName checks that a key name is safe for use as a filename
// and as a keychain entry.
func validateKeyName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: key name cannot be empty", ErrInvalidKeyName)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: key name cannot contain path separators", ErrInvalidKeyName)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: key name cannot contain '..'", ErrInvalidKeyName)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: key name cannot start with '.'", ErrInvalidKeyName)
	}
	if len(name) > 255 {
		return fmt.Errorf("%w: key name too long (max 255 characters)", ErrInvalidKeyName)
	}
	return nil
}
