package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2 parameters for the file store's password-derived key.
	filePBKDF2Iterations = 100_000
	filePBKDF2KeyLen     = 32
	fileSaltLen          = 16

	fileGCMNonceLen = 12

	keyFileExtension = ".key"

	// Owner read/write only.
	keyFilePermissions = 0600
	keyDirPermissions  = 0700
)

// FileKeyStore stores keys as JSON files, with the private scalar
// encrypted under AES-256-GCM and a PBKDF2-derived key.
type FileKeyStore struct {
	dir      string
	password []byte
	mu       sync.RWMutex
	closed   bool
}

// fileKeyData is the on-disk JSON structure.
type fileKeyData struct {
	Name        string `json:"name"`
	Family      string `json:"family"`
	PubKey      string `json:"pub_key"`       // base64
	PrivKeyData string `json:"priv_key_data"` // base64, encrypted
	Salt        string `json:"salt"`          // base64
	Nonce       string `json:"nonce"`         // base64
}

// NewFileKeyStore creates a store rooted at dir. The password derives
// per-key encryption keys and stays in memory until Close.
func NewFileKeyStore(dir, password string) (*FileKeyStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: directory path is empty", ErrKeyStoreIO)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", ErrKeyStoreIO)
	}
	if err := os.MkdirAll(dir, keyDirPermissions); err != nil {
		return nil, fmt.Errorf("%w: failed to create directory: %v", ErrKeyStoreIO, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat directory: %v", ErrKeyStoreIO, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: path is not a directory", ErrKeyStoreIO)
	}
	return &FileKeyStore{dir: dir, password: []byte(password)}, nil
}

func (fs *FileKeyStore) Store(name string, key StoredKey) error {
	if err := validateKeyName(name); err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.closed {
		return ErrKeyStoreClosed
	}

	filePath := fs.keyFilePath(name)
	if _, err := os.Stat(filePath); err == nil {
		return ErrKeyStoreExists
	}

	salt := make([]byte, fileSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("%w: failed to generate salt: %v", ErrKeyStoreIO, err)
	}
	nonce := make([]byte, fileGCMNonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("%w: failed to generate nonce: %v", ErrKeyStoreIO, err)
	}

	derivedKey := pbkdf2.Key(fs.password, salt, filePBKDF2Iterations, filePBKDF2KeyLen, sha256.New)
	defer Zeroize(derivedKey)

	// The key name rides along as authenticated data so a renamed file
	// fails decryption.
	ciphertext, err := encryptAESGCM(derivedKey, nonce, key.PrivKeyData, []byte(name))
	if err != nil {
		return fmt.Errorf("%w: encryption failed: %v", ErrKeyStoreIO, err)
	}

	data := fileKeyData{
		Name:        name,
		Family:      key.Family.String(),
		PubKey:      base64.StdEncoding.EncodeToString(key.PubKey),
		PrivKeyData: base64.StdEncoding.EncodeToString(ciphertext),
		Salt:        base64.StdEncoding.EncodeToString(salt),
		Nonce:       base64.StdEncoding.EncodeToString(nonce),
	}
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal key data: %v", ErrKeyStoreIO, err)
	}
	if err := os.WriteFile(filePath, jsonData, keyFilePermissions); err != nil {
		return fmt.Errorf("%w: failed to write key file: %v", ErrKeyStoreIO, err)
	}
	return nil
}

func (fs *FileKeyStore) Load(name string) (StoredKey, error) {
	if err := validateKeyName(name); err != nil {
		return StoredKey{}, err
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if fs.closed {
		return StoredKey{}, ErrKeyStoreClosed
	}

	jsonData, err := os.ReadFile(fs.keyFilePath(name))
	if os.IsNotExist(err) {
		return StoredKey{}, ErrKeyStoreNotFound
	}
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: failed to read key file: %v", ErrKeyStoreIO, err)
	}

	var data fileKeyData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return StoredKey{}, fmt.Errorf("%w: failed to parse key file: %v", ErrKeyStoreIO, err)
	}

	pubKey, err := base64.StdEncoding.DecodeString(data.PubKey)
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: invalid public key encoding: %v", ErrKeyStoreIO, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(data.PrivKeyData)
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: invalid private key encoding: %v", ErrKeyStoreIO, err)
	}
	salt, err := base64.StdEncoding.DecodeString(data.Salt)
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: invalid salt encoding: %v", ErrKeyStoreIO, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(data.Nonce)
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: invalid nonce encoding: %v", ErrKeyStoreIO, err)
	}

	derivedKey := pbkdf2.Key(fs.password, salt, filePBKDF2Iterations, filePBKDF2KeyLen, sha256.New)
	defer Zeroize(derivedKey)

	plaintext, err := decryptAESGCM(derivedKey, nonce, ciphertext, []byte(name))
	if err != nil {
		// Authentication failure means wrong password or tampered data.
		return StoredKey{}, ErrInvalidPassword
	}

	family, err := ParseKeyFamily(data.Family)
	if err != nil {
		return StoredKey{}, fmt.Errorf("%w: %v", ErrKeyStoreIO, err)
	}
	return StoredKey{
		Name:        data.Name,
		Family:      family,
		PubKey:      pubKey,
		PrivKeyData: plaintext,
		Salt:        salt,
		Nonce:       nonce,
	}, nil
}

func (fs *FileKeyStore) Delete(name string) error {
	if err := validateKeyName(name); err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.closed {
		return ErrKeyStoreClosed
	}

	filePath := fs.keyFilePath(name)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return ErrKeyStoreNotFound
	}
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("%w: failed to delete key file: %v", ErrKeyStoreIO, err)
	}
	return nil
}

func (fs *FileKeyStore) List() ([]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if fs.closed {
		return nil, ErrKeyStoreClosed
	}

	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read directory: %v", ErrKeyStoreIO, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name := entry.Name(); strings.HasSuffix(name, keyFileExtension) {
			names = append(names, strings.TrimSuffix(name, keyFileExtension))
		}
	}
	return names, nil
}

// Close zeroizes the password. Safe to call multiple times.
func (fs *FileKeyStore) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.closed {
		return nil
	}
	fs.closed = true
	Zeroize(fs.password)
	fs.password = nil
	return nil
}

func (fs *FileKeyStore) keyFilePath(name string) string {
	return filepath.Join(fs.dir, name+keyFileExtension)
}

// encryptAESGCM encrypts plaintext under AES-256-GCM; additionalData is
// authenticated but not encrypted.
func encryptAESGCM(key, nonce, plaintext, additionalData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead.Seal(nil, nonce, plaintext, additionalData), nil
}

// decryptAESGCM reverses encryptAESGCM, failing when authentication
// does not check out.
func decryptAESGCM(key, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}

var _ KeyStore = (*FileKeyStore)(nil)
