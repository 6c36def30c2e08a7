package keypair

import (
	"io"

	"srkeys/internal/crypto/sr25519"
	"srkeys/internal/mnemonic"
	"srkeys/internal/util/memzero"
)

// Sr25519Factory builds sr25519 key pairs.
type Sr25519Factory struct {
	deriver mnemonic.SeedDeriver
}

var _ Factory = (*Sr25519Factory)(nil)

// Option configures an Sr25519Factory.
type Option func(*Sr25519Factory)

// WithSeedDeriver overrides the mnemonic seed derivation. The default is
// mnemonic.SubstrateDeriver.
func WithSeedDeriver(d mnemonic.SeedDeriver) Option {
	return func(f *Sr25519Factory) {
		if d != nil {
			f.deriver = d
		}
	}
}

// NewSr25519Factory returns a factory with the given options applied.
func NewSr25519Factory(opts ...Option) *Sr25519Factory {
	f := &Sr25519Factory{deriver: mnemonic.SubstrateDeriver{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Sr25519Factory) Scheme() Scheme { return SchemeSr25519 }

// SeedDeriver returns the configured mnemonic derivation.
func (f *Sr25519Factory) SeedDeriver() mnemonic.SeedDeriver { return f.deriver }

func (f *Sr25519Factory) Generate(rand io.Reader) (*sr25519.KeyPair, error) {
	return sr25519.Generate(rand)
}

func (f *Sr25519Factory) Load(seed []byte) (*sr25519.KeyPair, error) {
	return sr25519.Load(seed)
}

func (f *Sr25519Factory) MnemonicSeed(m mnemonic.Mnemonic, passphrase string) ([]byte, error) {
	return f.deriver.DeriveSeed(m, passphrase)
}

func (f *Sr25519Factory) FromMnemonic(m mnemonic.Mnemonic, passphrase string) (*sr25519.KeyPair, error) {
	seed, err := f.MnemonicSeed(m, passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(seed)
	return sr25519.Load(seed)
}
