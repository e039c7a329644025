package crypto

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	// keychainKeyPrefix namespaces key entries within the service.
	keychainKeyPrefix = "key:"
	// keychainListKey holds the index of stored names; keychain APIs
	// have no native enumeration.
	keychainListKey = "_keylist"
)

// KeychainStore stores keys in the OS keychain: macOS Keychain, Windows
// Credential Store, or the Linux Secret Service. Keys are stored
// plaintext from this package's point of view; the keychain encrypts.
type KeychainStore struct {
	serviceName string
	mu          sync.RWMutex
	closed      bool
}

// keychainKeyData is the JSON structure stored per entry.
type keychainKeyData struct {
	Name        string `json:"name"`
	Family      string `json:"family"`
	PubKey      []byte `json:"pub_key"`
	PrivKeyData []byte `json:"priv_key_data"`
}

// NewKeychainStore opens the OS keychain under a service name. Returns
// ErrKeychainUnavailable when no keychain can be reached, as on Linux
// without D-Bus or a secret service daemon.
func NewKeychainStore(serviceName string) (*KeychainStore, error) {
	if serviceName == "" {
		return nil, fmt.Errorf("%w: service name cannot be empty", ErrKeyStoreIO)
	}
	// A probe read catches missing D-Bus or secret service up front.
	if _, err := keyring.Get(serviceName, keychainListKey); err != nil && err != keyring.ErrNotFound {
		return nil, fmt.Errorf("%w: %v", ErrKeychainUnavailable, err)
	}
	return &KeychainStore{serviceName: serviceName}, nil
}

func (ks *KeychainStore) Store(name string, key StoredKey) error {
	if err := validateKeyName(name); err != nil {
		return err
	}

	ks.mu.Lock()
	defer ks.mu.Unlock()

	if ks.closed {
		return ErrKeyStoreClosed
	}

	entry := keychainKeyPrefix + name
	if _, err := keyring.Get(ks.serviceName, entry); err == nil {
		return ErrKeyStoreExists
	} else if err != keyring.ErrNotFound {
		return fmt.Errorf("%w: failed to check existing key: %v", ErrKeyStoreIO, err)
	}

	data := keychainKeyData{
		Name:        name,
		Family:      key.Family.String(),
		PubKey:      key.PubKey,
		PrivKeyData: key.PrivKeyData,
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal key data: %v", ErrKeyStoreIO, err)
	}
	if err := keyring.Set(ks.serviceName, entry, string(jsonData)); err != nil {
		return fmt.Errorf("%w: failed to store key in keychain: %v", ErrKeyStoreIO, err)
	}

	if err := ks.addToKeyList(name); err != nil {
		// Roll back the orphaned entry.
		_ = keyring.Delete(ks.serviceName, entry)
		return err
	}
	return nil
}

func (ks *KeychainStore) Load(name string) (StoredKey, error) {
	if err := validateKeyName(name); err != nil {
		return StoredKey{}, err
	}

	ks.mu.RLock()
	defer ks.mu.RUnlock()

	if ks.closed {
		return StoredKey{}, ErrKeyStoreClosed
	}

	jsonStr, err := keyring.Get(ks.serviceName, keychainKeyPrefix+name)
	if err == keyring.ErrNotFound {
		return StoredKey{}, ErrKeyStoreNotFound
	}
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: failed to load key from keychain: %v", ErrKeyStoreIO, err)
	}

	var data keychainKeyData
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return StoredKey{}, fmt.Errorf("%w: failed to parse key data: %v", ErrKeyStoreIO, err)
	}
	family, err := ParseKeyFamily(data.Family)
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: %v", ErrKeyStoreIO, err)
	}
	return StoredKey{
		Name:        data.Name,
		Family:      family,
		PubKey:      data.PubKey,
		PrivKeyData: data.PrivKeyData,
	}, nil
}

func (ks *KeychainStore) Delete(name string) error {
	if err := validateKeyName(name); err != nil {
		return err
	}

	ks.mu.Lock()
	defer ks.mu.Unlock()

	if ks.closed {
		return ErrKeyStoreClosed
	}

	entry := keychainKeyPrefix + name
	if _, err := keyring.Get(ks.serviceName, entry); err == keyring.ErrNotFound {
		return ErrKeyStoreNotFound
	} else if err != nil {
		return fmt.Errorf("%w: failed to check key existence: %v", ErrKeyStoreIO, err)
	}
	if err := keyring.Delete(ks.serviceName, entry); err != nil {
		return fmt.Errorf("%w: failed to delete key from keychain: %v", ErrKeyStoreIO, err)
	}

	// Index update failure self-heals on the next Store; the entry
	// itself is already gone.
	_ = ks.removeFromKeyList(name)
	return nil
}

func (ks *KeychainStore) List() ([]string, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	if ks.closed {
		return nil, ErrKeyStoreClosed
	}

	listStr, err := keyring.Get(ks.serviceName, keychainListKey)
	if err == keyring.ErrNotFound {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read key list: %v", ErrKeyStoreIO, err)
	}

	names := make([]string, 0)
	for _, name := range strings.Split(listStr, ",") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Close marks the store closed. Keychain entries are not touched.
func (ks *KeychainStore) Close() error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.closed = true
	return nil
}

func (ks *KeychainStore) addToKeyList(name string) error {
	listStr, err := keyring.Get(ks.serviceName, keychainListKey)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("%w: failed to read key list: %v", ErrKeyStoreIO, err)
	}

	var names []string
	if listStr != "" {
		names = strings.Split(listStr, ",")
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	names = append(names, name)

	if err := keyring.Set(ks.serviceName, keychainListKey, strings.Join(names, ",")); err != nil {
		return fmt.Errorf("%w: failed to update key list: %v", ErrKeyStoreIO, err)
	}
	return nil
}

func (ks *KeychainStore) removeFromKeyList(name string) error {
	listStr, err := keyring.Get(ks.serviceName, keychainListKey)
	if err == keyring.ErrNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: failed to read key list: %v", ErrKeyStoreIO, err)
	}

	names := strings.Split(listStr, ",")
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n != name && n != "" {
			kept = append(kept, n)
		}
	}
	if err := keyring.Set(ks.serviceName, keychainListKey, strings.Join(kept, ",")); err != nil {
		return fmt.Errorf("%w: failed to update key list: %v", ErrKeyStoreIO, err)
	}
	return nil
}

var _ KeyStore = (*KeychainStore)(nil)
