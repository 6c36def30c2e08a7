package store

import (
	"errors"
	"fmt"
	"regexp"

	"srkeys/internal/domain"
)

var (
	// ErrInvalidKeyName is returned for names that cannot be used as a file
	// name component.
	ErrInvalidKeyName = errors.New("store: invalid key name")
	// ErrKeyNotFound is returned when no key is stored under a name.
	ErrKeyNotFound = errors.New("store: key not found")
	// ErrKeyExists is returned when saving over an existing key.
	ErrKeyExists = errors.New("store: key already exists")
)

var keyNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// ValidateKeyName reports whether name is usable as a key name: 1 to 64
// letters, digits, '.', '_' or '-', and not "." or "..".
func ValidateKeyName(name domain.KeyName) error {
	s := name.String()
	if !keyNamePattern.MatchString(s) || s == "." || s == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKeyName, s)
	}
	return nil
}
