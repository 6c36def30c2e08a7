package ss58_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"srkeys/internal/ss58"
)

const devPublic = "46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a"

func TestEncodeDecode_Vectors(t *testing.T) {
	pub, _ := hex.DecodeString(devPublic)
	alice, _ := hex.DecodeString("d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")

	tests := []struct {
		name   string
		pub    []byte
		prefix uint16
		want   string
	}{
		{"substrate", pub, ss58.SubstratePrefix, "5DfhGyQdFobKM8NsWvEeAKk5EQQgYe9AydgJ7rMB6E1EqRzV"},
		{"polkadot", pub, ss58.PolkadotPrefix, "12bzRJfh7arnnfPPUZHeJUaE62QLEwhK48QnH9LXeK2m1iZU"},
		{"kusama", pub, ss58.KusamaPrefix, "EBJwHkVtAcF6nCKHd3h4H75NzgvMJxMS1X3WWd8a2DjaQx9"},
		{"two-byte 64", pub, 64, "cEXBCBPEn84gHSpZtrHx5fmAvFR4UGKD2DL5kFGUnGLj2ksXy"},
		{"two-byte 1000", pub, 1000, "vjetWBMMxZ91MD8W3zMLXpVS7B12yYPEvwLDr5LFy2ioHZkAh"},
		{"two-byte max", pub, ss58.MaxPrefix, "yNWw4BEqdLrtrV4Gja14vK2s7JN7Td9tKvJvzcTXENhkJiVUD"},
		{"alice", alice, ss58.SubstratePrefix, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ss58.Encode(tt.pub, tt.prefix)
			require.NoError(t, err)
			require.Equal(t, tt.want, addr)

			got, prefix, err := ss58.Decode(addr)
			require.NoError(t, err)
			require.Equal(t, tt.pub, got)
			require.Equal(t, tt.prefix, prefix)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	pub, _ := hex.DecodeString(devPublic)

	_, err := ss58.Encode(pub[:31], ss58.SubstratePrefix)
	require.ErrorIs(t, err, ss58.ErrInvalidLength)

	_, err = ss58.Encode(pub, ss58.MaxPrefix+1)
	require.ErrorIs(t, err, ss58.ErrInvalidPrefix)
}

func TestDecode_Errors(t *testing.T) {
	addr := "5DfhGyQdFobKM8NsWvEeAKk5EQQgYe9AydgJ7rMB6E1EqRzV"

	_, _, err := ss58.Decode("")
	require.Error(t, err)

	_, _, err = ss58.Decode("0OIl")
	require.ErrorIs(t, err, ss58.ErrInvalidBase58)

	// Last character changed: the checksum no longer matches.
	_, _, err = ss58.Decode(addr[:len(addr)-1] + "W")
	require.ErrorIs(t, err, ss58.ErrInvalidChecksum)

	_, _, err = ss58.Decode(addr[:len(addr)-4])
	require.ErrorIs(t, err, ss58.ErrInvalidLength)
}
