package crypto

import (
	"sync"
)

// MemoryKeyStore keeps keys in process memory without encryption.
// Suitable for tests and ephemeral keys only.
type MemoryKeyStore struct {
	mu     sync.RWMutex
	keys   map[string]StoredKey
	closed bool
}

// NewMemoryKeyStore creates an empty in-memory key store.
func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{keys: make(map[string]StoredKey)}
}

func (m *MemoryKeyStore) Store(name string, key StoredKey) error {
	if err := validateKeyName(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrKeyStoreClosed
	}
	if _, exists := m.keys[name]; exists {
		return ErrKeyStoreExists
	}
	m.keys[name] = key.clone()
	return nil
}

func (m *MemoryKeyStore) Load(name string) (StoredKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return StoredKey{}, ErrKeyStoreClosed
	}
	key, exists := m.keys[name]
	if !exists {
		return StoredKey{}, ErrKeyStoreNotFound
	}
	return key.clone(), nil
}

func (m *MemoryKeyStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrKeyStoreClosed
	}
	key, exists := m.keys[name]
	if !exists {
		return ErrKeyStoreNotFound
	}
	// Wipe zeroes the slice arrays shared with the map entry.
	key.Wipe()
	delete(m.keys, name)
	return nil
}

func (m *MemoryKeyStore) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrKeyStoreClosed
	}
	names := make([]string, 0, len(m.keys))
	for name := range m.keys {
		names = append(names, name)
	}
	return names, nil
}

// Close wipes all stored keys. Safe to call multiple times.
func (m *MemoryKeyStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	for _, key := range m.keys {
		key.Wipe()
	}
	m.keys = nil
	return nil
}

var _ KeyStore = (*MemoryKeyStore)(nil)
