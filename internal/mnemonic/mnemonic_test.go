package mnemonic_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"srkeys/internal/mnemonic"
)

const devPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

func sequentialBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestGenerate_WordCounts(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{12, "abandon amount liar amount expire adjust cage candy arch gather drum buyer"},
		{15, "abandon amount liar amount expire adjust cage candy arch gather drum bullet absurd math exhibit"},
		{18, "abandon amount liar amount expire adjust cage candy arch gather drum bullet absurd math era live bid rib"},
		{21, "abandon amount liar amount expire adjust cage candy arch gather drum bullet absurd math era live bid rhythm alien crouch saddle"},
		{24, "abandon amount liar amount expire adjust cage candy arch gather drum bullet absurd math era live bid rhythm alien crouch range attend journey unaware"},
	}
	for _, tt := range tests {
		m, err := mnemonic.Generate(tt.words, bytes.NewReader(sequentialBytes(32)))
		require.NoError(t, err, "%d words", tt.words)
		require.Equal(t, tt.want, m.String())
		require.Equal(t, tt.words, m.WordCount())
		require.True(t, mnemonic.IsValid(m))
	}
}

func TestGenerate_RandomRoundTrip(t *testing.T) {
	for _, n := range mnemonic.SupportedWordCounts {
		m, err := mnemonic.Generate(n, nil)
		require.NoError(t, err)
		require.NoError(t, mnemonic.Validate(m))

		parsed, err := mnemonic.Parse(m.String())
		require.NoError(t, err)
		require.Equal(t, m.Words(), parsed.Words())
	}
}

func TestGenerate_UnsupportedWordCount(t *testing.T) {
	for _, n := range []int{0, 1, 11, 13, 23, 25, 48} {
		_, err := mnemonic.Generate(n, nil)
		require.ErrorIs(t, err, mnemonic.ErrUnsupportedWordCount, "%d words", n)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestGenerate_EntropyFailure(t *testing.T) {
	_, err := mnemonic.Generate(12, failingReader{})
	require.ErrorIs(t, err, mnemonic.ErrEntropyUnavailable)

	_, err = mnemonic.Generate(24, bytes.NewReader(make([]byte, 8)))
	require.ErrorIs(t, err, mnemonic.ErrEntropyUnavailable)
}

func TestParse_Normalises(t *testing.T) {
	m, err := mnemonic.Parse("  Bottom drive\tobey lake curtain smoke\nbasket hold race lonely FIT walk ")
	require.NoError(t, err)
	require.Equal(t, devPhrase, m.String())
}

func TestValidate_Errors(t *testing.T) {
	words := strings.Fields(devPhrase)

	tests := []struct {
		name   string
		phrase string
		want   error
	}{
		{"too short", strings.Join(words[:11], " "), mnemonic.ErrUnsupportedWordCount},
		{"too long", devPhrase + " walk", mnemonic.ErrUnsupportedWordCount},
		{"empty", "", mnemonic.ErrUnsupportedWordCount},
		{"unknown word", strings.Replace(devPhrase, "lake", "lakes", 1), mnemonic.ErrUnknownWord},
		{"bad checksum", strings.Repeat("abandon ", 12), mnemonic.ErrInvalidChecksum},
		{"swapped words", strings.Replace(devPhrase, "bottom drive", "drive bottom", 1), mnemonic.ErrInvalidChecksum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mnemonic.Parse(tt.phrase)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_UnknownWordNamesPosition(t *testing.T) {
	_, err := mnemonic.Parse(strings.Replace(devPhrase, "lake", "lakes", 1))
	require.ErrorIs(t, err, mnemonic.ErrUnknownWord)
	require.Contains(t, err.Error(), `"lakes"`)
	require.Contains(t, err.Error(), "position 4")
}

func TestEntropy(t *testing.T) {
	m, err := mnemonic.Parse(strings.Repeat("abandon ", 11) + "about")
	require.NoError(t, err)
	e, err := m.Entropy()
	require.NoError(t, err)
	require.Equal(t, make([]byte, 16), e)

	back, err := mnemonic.FromEntropy(e)
	require.NoError(t, err)
	require.Equal(t, m.String(), back.String())

	_, err = mnemonic.FromEntropy(make([]byte, 15))
	require.Error(t, err)
}

func TestToSeed_BIP39Vector(t *testing.T) {
	m, err := mnemonic.Parse(strings.Repeat("abandon ", 11) + "about")
	require.NoError(t, err)
	seed, err := mnemonic.ToSeed(m, "TREZOR")
	require.NoError(t, err)
	require.Equal(t,
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553"+
			"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		hex.EncodeToString(seed))

	_, err = mnemonic.ToSeed(mnemonic.Mnemonic{}, "")
	require.ErrorIs(t, err, mnemonic.ErrUnsupportedWordCount)
}

func TestDerivers(t *testing.T) {
	dev, err := mnemonic.Parse(devPhrase)
	require.NoError(t, err)
	abandon, err := mnemonic.Parse(strings.Repeat("abandon ", 11) + "about")
	require.NoError(t, err)

	tests := []struct {
		name       string
		deriver    mnemonic.SeedDeriver
		m          mnemonic.Mnemonic
		passphrase string
		want       string
	}{
		{"substrate dev", mnemonic.SubstrateDeriver{}, dev, "", "fac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e"},
		{"substrate dev password", mnemonic.SubstrateDeriver{}, dev, "password", "7093ab08d7abbb67ff41479a98ef998e4be773901f13668a012f51d207577a88"},
		// precomposed é, not normalised
		{"substrate dev non-ascii password", mnemonic.SubstrateDeriver{}, dev, "caf\u00e9", "a6c9e17b30446ce55f98f7bd9a065b8e76170645168c030898fa56aeb5b1452a"},
		{"substrate abandon", mnemonic.SubstrateDeriver{}, abandon, "Substrate", "44e9d125f037ac1d51f0a7d3649689d422c2af8b1ec8e00d71db4d7bf6d127e3"},
		{"bip39 dev", mnemonic.BIP39Deriver{}, dev, "", "02d5cd1db85b4d1397d78978062a1160e76e94cc5aaad3089644846865bb18fc"},
		{"bip39 abandon", mnemonic.BIP39Deriver{}, abandon, "TREZOR", "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := tt.deriver.DeriveSeed(tt.m, tt.passphrase)
			require.NoError(t, err)
			require.Len(t, seed, mnemonic.SeedSize)
			require.Equal(t, tt.want, hex.EncodeToString(seed))

			again, err := tt.deriver.DeriveSeed(tt.m, tt.passphrase)
			require.NoError(t, err)
			require.Equal(t, seed, again)
		})
	}
}

func TestDerivers_RejectInvalidMnemonic(t *testing.T) {
	for _, d := range []mnemonic.SeedDeriver{mnemonic.SubstrateDeriver{}, mnemonic.BIP39Deriver{}} {
		_, err := d.DeriveSeed(mnemonic.Mnemonic{}, "")
		require.ErrorIs(t, err, mnemonic.ErrUnsupportedWordCount, d.Name())
	}
}

func TestDeriverByName(t *testing.T) {
	for name, want := range map[string]string{"": "substrate", "substrate": "substrate", "bip39": "bip39"} {
		d, err := mnemonic.DeriverByName(name)
		require.NoError(t, err)
		require.Equal(t, want, d.Name())
	}
	_, err := mnemonic.DeriverByName("scrypt")
	require.ErrorIs(t, err, mnemonic.ErrUnknownDerivation)
}
