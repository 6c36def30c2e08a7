package store

import (
	"path/filepath"
	"sort"
	"sync"

	"srkeys/internal/domain"
)

const indexFile = "index.json"

// IndexFileStore keeps the public details of stored keys in
// <home>/keys/index.json.
type IndexFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewIndexFileStore returns an IndexFileStore rooted at home.
func NewIndexFileStore(home string) *IndexFileStore {
	return &IndexFileStore{dir: filepath.Join(home, keysDir)}
}

func (s *IndexFileStore) load() (map[domain.KeyName]domain.KeyInfo, error) {
	entries := make(map[domain.KeyName]domain.KeyInfo)
	if err := readJSON(filepath.Join(s.dir, indexFile), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PutKeyInfo stores or replaces the entry for info.Name.
func (s *IndexFileStore) PutKeyInfo(info domain.KeyInfo) error {
	if err := ValidateKeyName(info.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[info.Name] = info
	return writeJSON(filepath.Join(s.dir, indexFile), entries)
}

// LoadKeyInfo returns the entry for name.
func (s *IndexFileStore) LoadKeyInfo(name domain.KeyName) (domain.KeyInfo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return domain.KeyInfo{}, false, err
	}
	info, ok := entries[name]
	return info, ok, nil
}

// ListKeyInfo returns all entries sorted by name.
func (s *IndexFileStore) ListKeyInfo() ([]domain.KeyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyInfo, 0, len(entries))
	for _, info := range entries {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// RemoveKeyInfo deletes the entry for name. Removing a missing entry is not
// an error.
func (s *IndexFileStore) RemoveKeyInfo(name domain.KeyName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[name]; !ok {
		return nil
	}
	delete(entries, name)
	return writeJSON(filepath.Join(s.dir, indexFile), entries)
}

// Compile-time assertion that IndexFileStore implements domain.KeyIndex.
var _ domain.KeyIndex = (*IndexFileStore)(nil)
