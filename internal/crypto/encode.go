package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex returns b as lowercase hex with a 0x prefix.
func Hex(b []byte) string { return "0x" + hex.EncodeToString(b) }

// ParseHex decodes s with or without a 0x prefix.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// ParseHexN decodes s and checks it is exactly n bytes.
func ParseHexN(s string, n int) ([]byte, error) {
	b, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("invalid hex: want %d bytes, got %d", n, len(b))
	}
	return b, nil
}
