// Package ss58 encodes and decodes Substrate SS58 account addresses for
// 32-byte public keys.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"
)

// Well-known network prefixes.
const (
	PolkadotPrefix  uint16 = 0
	KusamaPrefix    uint16 = 2
	SubstratePrefix uint16 = 42

	// MaxPrefix is the largest prefix the two-byte form can carry.
	MaxPrefix uint16 = 16383
)

const (
	keySize      = 32
	checksumSize = 2
)

var (
	ErrInvalidPrefix   = errors.New("ss58: invalid network prefix")
	ErrInvalidChecksum = errors.New("ss58: invalid checksum")
	ErrInvalidLength   = errors.New("ss58: invalid length")
	ErrInvalidBase58   = errors.New("ss58: invalid base58")
)

var checksumPrefix = []byte("SS58PRE")

// Encode returns the SS58 address of pub under the given network prefix.
func Encode(pub []byte, prefix uint16) (string, error) {
	if len(pub) != keySize {
		return "", fmt.Errorf("%w: key of %d bytes", ErrInvalidLength, len(pub))
	}
	pre, err := encodePrefix(prefix)
	if err != nil {
		return "", err
	}
	payload := append(pre, pub...)
	payload = append(payload, checksum(payload)...)
	return base58.Encode(payload), nil
}

// Decode parses addr and returns the public key and network prefix.
func Decode(addr string) ([]byte, uint16, error) {
	raw, err := base58.Decode(addr)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidBase58, err)
	}
	if len(raw) == 0 {
		return nil, 0, ErrInvalidLength
	}

	prefix, preLen, err := decodePrefix(raw)
	if err != nil {
		return nil, 0, err
	}
	if len(raw) != preLen+keySize+checksumSize {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(raw))
	}
	body := raw[:preLen+keySize]
	if !bytes.Equal(checksum(body), raw[preLen+keySize:]) {
		return nil, 0, ErrInvalidChecksum
	}
	return append([]byte(nil), raw[preLen:preLen+keySize]...), prefix, nil
}

// encodePrefix uses one byte below 64 and the two-byte form up to MaxPrefix.
func encodePrefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix < 64:
		return []byte{byte(prefix)}, nil
	case prefix <= MaxPrefix:
		return []byte{
			byte((prefix&0x00fc)>>2) | 0x40,
			byte(prefix>>8) | byte((prefix&0x0003)<<6),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}
}

func decodePrefix(raw []byte) (uint16, int, error) {
	switch b0 := raw[0]; {
	case b0 < 64:
		return uint16(b0), 1, nil
	case b0 < 128:
		if len(raw) < 2 {
			return 0, 0, ErrInvalidLength
		}
		b1 := raw[1]
		lower := (b0&0x3f)<<2 | b1>>6
		upper := b1 & 0x3f
		return uint16(lower) | uint16(upper)<<8, 2, nil
	default:
		return 0, 0, fmt.Errorf("%w: reserved first byte %#x", ErrInvalidPrefix, b0)
	}
}

func checksum(body []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(checksumPrefix)
	h.Write(body)
	return h.Sum(nil)[:checksumSize]
}
