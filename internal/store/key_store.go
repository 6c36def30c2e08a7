package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"srkeys/internal/domain"
	"srkeys/internal/util/memzero"
)

const (
	keysDir    = "keys"
	keyFileExt = ".key.enc"
)

// KeyFileStore persists passphrase-encrypted key records, one file per key
// under <home>/keys.
type KeyFileStore struct {
	dir    string
	params kdfParams
	mu     sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at home. New files are
// sealed with a key derived by kdf.
func NewKeyFileStore(home string, kdf KDF) *KeyFileStore {
	return &KeyFileStore{dir: filepath.Join(home, keysDir), params: paramsFor(kdf)}
}

func (s *KeyFileStore) path(name domain.KeyName) string {
	return filepath.Join(s.dir, name.String()+keyFileExt)
}

// SaveKey encrypts rec under passphrase and writes it. An existing key with
// the same name is never overwritten.
func (s *KeyFileStore) SaveKey(passphrase string, rec domain.KeyRecord) error {
	if err := ValidateKeyName(rec.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(rec.Name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %q", ErrKeyExists, rec.Name)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	ct, err := encrypt(passphrase, raw, s.params)
	if err != nil {
		return err
	}
	return writeFile(path, ct)
}

// LoadKey reads and decrypts the key stored under name. The caller should
// Wipe the returned record.
func (s *KeyFileStore) LoadKey(name domain.KeyName, passphrase string) (domain.KeyRecord, error) {
	if err := ValidateKeyName(name); err != nil {
		return domain.KeyRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path(name))
	if err != nil {
		return domain.KeyRecord{}, err
	}
	if b == nil {
		return domain.KeyRecord{}, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return domain.KeyRecord{}, err
	}
	defer memzero.Zero(pt)

	var rec domain.KeyRecord
	if err := json.Unmarshal(pt, &rec); err != nil {
		return domain.KeyRecord{}, err
	}
	return rec, nil
}

// DeleteKey removes the key file for name.
func (s *KeyFileStore) DeleteKey(name domain.KeyName) error {
	if err := ValidateKeyName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	return err
}

// HasKey reports whether a key file exists for name.
func (s *KeyFileStore) HasKey(name domain.KeyName) (bool, error) {
	if err := ValidateKeyName(name); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path(name))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// ListKeys returns the names of all stored keys, sorted.
func (s *KeyFileStore) ListKeys() ([]domain.KeyName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []domain.KeyName
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keyFileExt) {
			continue
		}
		names = append(names, domain.KeyName(strings.TrimSuffix(e.Name(), keyFileExt)))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
