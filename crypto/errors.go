package crypto

import "errors"

// Key errors
var (
	// ErrZeroPrivateKey is returned when key material reduces to the zero
	// scalar, which has no corresponding public key.
	ErrZeroPrivateKey = errors.New("private key is zero")

	// ErrInvalidPrivateKey is returned for key material of the wrong
	// length or outside the curve order.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned for a malformed public key: wrong
	// length, bad amino tag, or a point not on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrUnsupportedFamily is returned when a key family is not recognized.
	ErrUnsupportedFamily = errors.New("unsupported key family")
)

// KeyStore errors
var (
	// ErrKeyStoreNotFound is returned when a key is not found in the store.
	ErrKeyStoreNotFound = errors.New("key not found in store")

	// ErrKeyStoreExists is returned when attempting to store a key that already exists.
	ErrKeyStoreExists = errors.New("key already exists in store")

	// ErrKeyStoreIO is returned when an I/O error occurs during store operations.
	ErrKeyStoreIO = errors.New("key store I/O error")

	// ErrInvalidKeyName is returned when a key name fails validation.
	ErrInvalidKeyName = errors.New("invalid key name")

	// ErrInvalidPassword is returned when decryption fails due to wrong password.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrKeyStoreClosed is returned when operations are attempted on a closed store.
	ErrKeyStoreClosed = errors.New("key store is closed")

	// ErrKeychainUnavailable is returned when the OS keychain cannot be accessed.
	// Common causes:
	//   - Linux: D-Bus not running, or no secret service daemon (gnome-keyring, ksecretservice)
	//   - Headless environments: No GUI session for authentication prompts
	ErrKeychainUnavailable = errors.New("keychain unavailable")
)
