package keypair_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"srkeys/internal/crypto/sr25519"
	"srkeys/internal/keypair"
	"srkeys/internal/mnemonic"
)

const devPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

func TestParseScheme(t *testing.T) {
	s, err := keypair.ParseScheme("sr25519")
	require.NoError(t, err)
	require.Equal(t, keypair.SchemeSr25519, s)
	require.Equal(t, "sr25519", s.String())

	for _, tag := range []string{"", "ed25519", "SR25519", "ecdsa"} {
		_, err := keypair.ParseScheme(tag)
		require.ErrorIs(t, err, keypair.ErrUnsupportedScheme, tag)
	}
}

func TestFactoryFor(t *testing.T) {
	f, err := keypair.FactoryFor(keypair.SchemeSr25519)
	require.NoError(t, err)
	require.Equal(t, keypair.SchemeSr25519, f.Scheme())

	_, err = keypair.FactoryFor(keypair.SchemeUnknown)
	require.ErrorIs(t, err, keypair.ErrUnsupportedScheme)
	_, err = keypair.FactoryFor(keypair.Scheme(42))
	require.ErrorIs(t, err, keypair.ErrUnsupportedScheme)

	f, err = keypair.FactoryForTag("sr25519")
	require.NoError(t, err)
	require.Equal(t, keypair.SchemeSr25519, f.Scheme())
	_, err = keypair.FactoryForTag("secp256k1")
	require.ErrorIs(t, err, keypair.ErrUnsupportedScheme)
}

func TestSr25519Factory_Load(t *testing.T) {
	f, err := keypair.FactoryFor(keypair.SchemeSr25519)
	require.NoError(t, err)

	seed, _ := hex.DecodeString("cfdd8f2503e043e9884997c6afcccd3bb30184f7c504de359ce3e591d4f8d853")
	kp, err := f.Load(seed)
	require.NoError(t, err)
	require.Equal(t, "003b6c9a114fb708a99b6fa6753e145f12cf62b9eba095d57a4237570e152f53", kp.Public().String())

	_, err = f.Load(seed[:31])
	require.ErrorIs(t, err, sr25519.ErrInvalidSeedLength)
}

func TestSr25519Factory_Generate(t *testing.T) {
	f := keypair.NewSr25519Factory()
	kp, err := f.Generate(bytes.NewReader(make([]byte, 32)))
	require.NoError(t, err)

	zero, err := f.Load(make([]byte, 32))
	require.NoError(t, err)
	require.Equal(t, zero.Public(), kp.Public())

	_, err = f.Generate(bytes.NewReader(nil))
	require.ErrorIs(t, err, sr25519.ErrEntropyUnavailable)
}

func TestSr25519Factory_FromMnemonic(t *testing.T) {
	m, err := mnemonic.Parse(devPhrase)
	require.NoError(t, err)

	f := keypair.NewSr25519Factory()
	require.Equal(t, "substrate", f.SeedDeriver().Name())

	kp, err := f.FromMnemonic(m, "")
	require.NoError(t, err)
	require.Equal(t, "46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a", kp.Public().String())

	again, err := f.FromMnemonic(m, "")
	require.NoError(t, err)
	a, err := kp.SecretKeyBytes()
	require.NoError(t, err)
	b, err := again.SecretKeyBytes()
	require.NoError(t, err)
	require.Equal(t, a, b)

	seed, err := f.MnemonicSeed(m, "")
	require.NoError(t, err)
	require.Equal(t, "fac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e", hex.EncodeToString(seed))

	_, err = f.FromMnemonic(mnemonic.Mnemonic{}, "")
	require.ErrorIs(t, err, mnemonic.ErrUnsupportedWordCount)
}

func TestSr25519Factory_WithSeedDeriver(t *testing.T) {
	m, err := mnemonic.Parse(devPhrase)
	require.NoError(t, err)

	f := keypair.NewSr25519Factory(keypair.WithSeedDeriver(mnemonic.BIP39Deriver{}))
	kp, err := f.FromMnemonic(m, "")
	require.NoError(t, err)
	require.Equal(t, "12b63f97d4c851f5b0ad4654fa8ff381f7223cf3793f640c53f799bf5710ed65", kp.Public().String())

	f = keypair.NewSr25519Factory(keypair.WithSeedDeriver(nil))
	require.Equal(t, "substrate", f.SeedDeriver().Name())
}
