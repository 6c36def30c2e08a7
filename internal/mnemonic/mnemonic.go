package mnemonic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnsupportedWordCount is returned for phrases or requests that are
	// not 12, 15, 18, 21 or 24 words long.
	ErrUnsupportedWordCount = errors.New("mnemonic: unsupported word count")
	// ErrUnknownWord is returned when a word is not in the word list.
	ErrUnknownWord = errors.New("mnemonic: unknown word")
	// ErrInvalidChecksum is returned when the checksum bits do not match the
	// entropy.
	ErrInvalidChecksum = errors.New("mnemonic: invalid checksum")
	// ErrEntropyUnavailable is returned when the random source fails.
	ErrEntropyUnavailable = errors.New("mnemonic: entropy source unavailable")
)

// SupportedWordCounts lists the phrase lengths accepted by Generate and
// Validate.
var SupportedWordCounts = []int{12, 15, 18, 21, 24}

// Mnemonic is a normalised word phrase. The zero value holds no words and is
// not valid.
type Mnemonic struct {
	words []string
}

// Words returns a copy of the words.
func (m Mnemonic) Words() []string { return append([]string(nil), m.words...) }

// WordCount returns the number of words.
func (m Mnemonic) WordCount() int { return len(m.words) }

// String returns the words joined by single spaces.
func (m Mnemonic) String() string { return strings.Join(m.words, " ") }

// entropyBytes returns the entropy length for a word count, or 0 if the
// count is unsupported. Each word carries 11 bits, one in 33 of which is
// checksum.
func entropyBytes(words int) int {
	for _, n := range SupportedWordCounts {
		if n == words {
			return words * 11 * 32 / 33 / 8
		}
	}
	return 0
}

// Generate draws fresh entropy from rand and encodes it as a phrase of the
// given length. A nil rand uses crypto/rand.Reader.
func Generate(words int, rand io.Reader) (Mnemonic, error) {
	n := entropyBytes(words)
	if n == 0 {
		return Mnemonic{}, fmt.Errorf("%w: %d", ErrUnsupportedWordCount, words)
	}
	if rand == nil {
		rand = defaultRand
	}

	entropy := make([]byte, n)
	defer wipe(entropy)
	if _, err := io.ReadFull(rand, entropy); err != nil {
		return Mnemonic{}, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return FromEntropy(entropy)
}

// FromEntropy encodes 16 to 32 bytes of entropy (in steps of 4) as a phrase.
func FromEntropy(entropy []byte) (Mnemonic, error) {
	if n := len(entropy); n < 16 || n > 32 || n%4 != 0 {
		return Mnemonic{}, fmt.Errorf("%w: entropy of %d bytes", ErrUnsupportedWordCount, len(entropy))
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Mnemonic{}, fmt.Errorf("mnemonic: encode entropy: %w", err)
	}
	return Mnemonic{words: strings.Fields(phrase)}, nil
}

// Parse normalises phrase and validates it.
func Parse(phrase string) (Mnemonic, error) {
	m := Mnemonic{words: strings.Fields(strings.ToLower(norm.NFKD.String(phrase)))}
	if err := Validate(m); err != nil {
		return Mnemonic{}, err
	}
	return m, nil
}

// Validate checks the word count, that every word is in the list, and the
// checksum.
func Validate(m Mnemonic) error {
	if entropyBytes(len(m.words)) == 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedWordCount, len(m.words))
	}
	for i, w := range m.words {
		if _, ok := bip39.GetWordIndex(w); !ok {
			return fmt.Errorf("%w: %q at position %d", ErrUnknownWord, w, i+1)
		}
	}
	entropy, err := m.Entropy()
	if err != nil {
		return err
	}
	wipe(entropy)
	return nil
}

// IsValid reports whether Validate accepts m.
func IsValid(m Mnemonic) bool { return Validate(m) == nil }

// Entropy decodes the entropy bytes encoded by m. The caller should wipe the
// result.
func (m Mnemonic) Entropy() ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(m.String())
	switch {
	case err == nil:
		return entropy, nil
	case errors.Is(err, bip39.ErrChecksumIncorrect):
		return nil, ErrInvalidChecksum
	case errors.Is(err, bip39.ErrInvalidMnemonic):
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWordCount, len(m.words))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownWord, err)
	}
}

// ToSeed returns the 64-byte BIP-39 seed: PBKDF2-HMAC-SHA512 with 2048
// iterations over the phrase, salted with "mnemonic" + passphrase.
func ToSeed(m Mnemonic, passphrase string) ([]byte, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	return bip39.NewSeed(m.String(), norm.NFKD.String(passphrase)), nil
}
