package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"srkeys/internal/util/memzero"
)

// KDF names the passphrase key derivation used for new key files.
type KDF string

const (
	KDFScrypt   KDF = "scrypt"
	KDFArgon2id KDF = "argon2id"
)

// ParseKDF maps a config value to a KDF. An empty string selects scrypt.
func ParseKDF(s string) (KDF, error) {
	switch KDF(s) {
	case "", KDFScrypt:
		return KDFScrypt, nil
	case KDFArgon2id:
		return KDFArgon2id, nil
	default:
		return "", fmt.Errorf("store: unknown kdf %q", s)
	}
}

const (
	// Blob format versions. v1 is scrypt, v2 is argon2id.
	blobVersionScrypt     = 1
	blobVersionArgon2id   = 2
	keystoreFormatVersion = blobVersionArgon2id

	saltSize = 16

	// Upper bounds on parameters read back from a key file, so a corrupted
	// file fails instead of exhausting memory.
	maxScryptN       = 1 << 20
	maxScryptR       = 32
	maxScryptP       = 16
	maxArgon2Time    = 16
	maxArgon2Memory  = 1 << 20 // KiB, 1 GiB
	maxArgon2Threads = 64
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified or corrupted.
	ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted key file")

	// ErrInvalidKDFParams is returned when a key file records KDF parameters
	// outside the accepted range.
	ErrInvalidKDFParams = errors.New("store: invalid kdf parameters in key file")
)

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V    int    `json:"v"`
	Salt []byte `json:"salt"`

	N int `json:"scrypt_N,omitempty"`
	R int `json:"scrypt_r,omitempty"`
	P int `json:"scrypt_p,omitempty"`

	Time    uint32 `json:"argon2_t,omitempty"`
	Memory  uint32 `json:"argon2_m,omitempty"`
	Threads uint8  `json:"argon2_p,omitempty"`

	Cipher []byte `json:"cipher"`
}

// kdfParams are the tunables recorded in a blob.
type kdfParams struct {
	kdf KDF

	N, R, P int

	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// Tunables for key derivation.
func scryptParamsDefault() kdfParams {
	return kdfParams{kdf: KDFScrypt, N: 1 << 15, R: 8, P: 1}
}

func argon2idParamsDefault() kdfParams {
	return kdfParams{kdf: KDFArgon2id, Time: 1, Memory: 64 * 1024, Threads: 4}
}

func paramsFor(k KDF) kdfParams {
	if k == KDFArgon2id {
		return argon2idParamsDefault()
	}
	return scryptParamsDefault()
}

// validate bounds parameters read from disk.
func (p kdfParams) validate() error {
	switch p.kdf {
	case KDFScrypt:
		// scrypt also requires N to be a power of two greater than 1.
		if p.N < 2 || p.N > maxScryptN || p.N&(p.N-1) != 0 {
			return fmt.Errorf("%w: scrypt N=%d", ErrInvalidKDFParams, p.N)
		}
		if p.R < 1 || p.R > maxScryptR || p.P < 1 || p.P > maxScryptP {
			return fmt.Errorf("%w: scrypt r=%d p=%d", ErrInvalidKDFParams, p.R, p.P)
		}
	case KDFArgon2id:
		if p.Time < 1 || p.Time > maxArgon2Time ||
			p.Memory < 8 || p.Memory > maxArgon2Memory ||
			p.Threads < 1 || p.Threads > maxArgon2Threads {
			return fmt.Errorf("%w: argon2id t=%d m=%d p=%d", ErrInvalidKDFParams, p.Time, p.Memory, p.Threads)
		}
	}
	return nil
}

func (p kdfParams) deriveKey(passphrase string, salt []byte) ([]byte, error) {
	switch p.kdf {
	case KDFArgon2id:
		return argon2.IDKey([]byte(passphrase), salt, p.Time, p.Memory, p.Threads, chacha20poly1305.KeySize), nil
	case KDFScrypt:
		return scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	default:
		return nil, fmt.Errorf("store: unknown kdf %q", p.kdf)
	}
}

// encrypt derives a key from passphrase and seals raw into a JSON blob.
func encrypt(passphrase string, raw []byte, params kdfParams) ([]byte, error) {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:] /* #nosec G404 */); err != nil {
		return nil, err
	}
	key, err := params.deriveKey(passphrase, salt[:])
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	bl := blob{Salt: salt[:], Cipher: ct}
	switch params.kdf {
	case KDFArgon2id:
		bl.V = blobVersionArgon2id
		bl.Time, bl.Memory, bl.Threads = params.Time, params.Memory, params.Threads
	default:
		bl.V = blobVersionScrypt
		bl.N, bl.R, bl.P = params.N, params.R, params.P
	}
	return json.Marshal(bl)
}

// decrypt opens the JSON blob using a key derived from passphrase.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}

	var params kdfParams
	switch bl.V {
	case blobVersionScrypt:
		params = kdfParams{kdf: KDFScrypt, N: bl.N, R: bl.R, P: bl.P}
	case blobVersionArgon2id:
		params = kdfParams{kdf: KDFArgon2id, Time: bl.Time, Memory: bl.Memory, Threads: bl.Threads}
	default:
		return nil, fmt.Errorf("unsupported keystore version %d (max %d)", bl.V, keystoreFormatVersion)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	if len(bl.Salt) != saltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes", ErrInvalidKDFParams, len(bl.Salt))
	}

	key, err := params.deriveKey(passphrase, bl.Salt)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
