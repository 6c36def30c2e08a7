package keys

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode"

	"go.uber.org/zap"

	"srkeys/internal/crypto"
	"srkeys/internal/crypto/sr25519"
	"srkeys/internal/domain"
	"srkeys/internal/keypair"
	"srkeys/internal/logging"
	"srkeys/internal/mnemonic"
	"srkeys/internal/ss58"
	"srkeys/internal/store"
	"srkeys/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12

	// DefaultWordCount is the phrase length Create uses when given 0.
	DefaultWordCount = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrNoMnemonic is returned by Export for keys imported from a raw seed.
	ErrNoMnemonic = errors.New("key was not created from a mnemonic")
)

// Service manages named keys using a backing key store and index.
type Service struct {
	keys    domain.KeyStore
	index   domain.KeyIndex
	deriver mnemonic.SeedDeriver
	factory keypair.Factory

	prefix  uint16
	context []byte
	rand    io.Reader
	now     func() time.Time
	log     *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSeedDeriver sets how mnemonics become seeds. The default is
// mnemonic.SubstrateDeriver.
func WithSeedDeriver(d mnemonic.SeedDeriver) Option {
	return func(s *Service) { s.deriver = d }
}

// WithSS58Prefix sets the network prefix used for addresses.
func WithSS58Prefix(prefix uint16) Option {
	return func(s *Service) { s.prefix = prefix }
}

// WithSigningContext sets the sr25519 signing context.
func WithSigningContext(ctx string) Option {
	return func(s *Service) { s.context = []byte(ctx) }
}

// WithRand sets the entropy source for new mnemonics.
func WithRand(r io.Reader) Option {
	return func(s *Service) { s.rand = r }
}

// WithClock sets the time source used to stamp new keys.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a key service backed by the given store and index.
func New(ks domain.KeyStore, idx domain.KeyIndex, opts ...Option) *Service {
	s := &Service{
		keys:    ks,
		index:   idx,
		deriver: mnemonic.SubstrateDeriver{},
		prefix:  ss58.SubstratePrefix,
		context: []byte(sr25519.DefaultContext),
		now:     time.Now,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.factory = keypair.NewSr25519Factory(keypair.WithSeedDeriver(s.deriver))
	return s
}

// Create generates a fresh mnemonic of the given length, derives a key from
// it and stores it encrypted under passphrase. It returns the index entry and
// the phrase, which the caller must show to the user once.
func (s *Service) Create(
	name domain.KeyName,
	passphrase string,
	words int,
) (domain.KeyInfo, string, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyInfo{}, "", ErrWeakPassphrase
	}
	if err := s.ensureFree(name); err != nil {
		return domain.KeyInfo{}, "", err
	}
	if words == 0 {
		words = DefaultWordCount
	}

	m, err := mnemonic.Generate(words, s.rand)
	if err != nil {
		return domain.KeyInfo{}, "", err
	}
	info, err := s.storeMnemonic(name, passphrase, m, "")
	if err != nil {
		return domain.KeyInfo{}, "", err
	}
	return info, m.String(), nil
}

// Import derives a key from an existing phrase (and optional mnemonic
// password) and stores it encrypted under passphrase.
func (s *Service) Import(
	name domain.KeyName,
	passphrase string,
	phrase string,
	mnemonicPassword string,
) (domain.KeyInfo, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyInfo{}, ErrWeakPassphrase
	}
	if err := s.ensureFree(name); err != nil {
		return domain.KeyInfo{}, err
	}
	m, err := mnemonic.Parse(phrase)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	return s.storeMnemonic(name, passphrase, m, mnemonicPassword)
}

// ImportSeed stores a key given as a raw 32-byte seed.
func (s *Service) ImportSeed(
	name domain.KeyName,
	passphrase string,
	seed []byte,
) (domain.KeyInfo, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyInfo{}, ErrWeakPassphrase
	}
	if err := s.ensureFree(name); err != nil {
		return domain.KeyInfo{}, err
	}
	return s.save(name, passphrase, seed, "", "")
}

// Sign loads the key, signs msg under the configured context and wipes the
// key again.
func (s *Service) Sign(name domain.KeyName, passphrase string, msg []byte) ([]byte, error) {
	kp, err := s.loadKeyPair(name, passphrase)
	if err != nil {
		return nil, err
	}
	defer kp.Wipe()

	sig, err := kp.SignContext(s.context, msg)
	if err != nil {
		return nil, err
	}
	s.log.Debug("message signed",
		zap.String("name", name.String()),
		logging.PublicKey("public", kp.Public().Bytes()),
		zap.Int("msg_len", len(msg)),
	)
	return sig.Bytes(), nil
}

// Verify checks sig over msg against a 32-byte public key under the
// configured context. Malformed keys or signatures verify as false; only a
// public key of the wrong length is an error.
func (s *Service) Verify(pub []byte, msg []byte, sig []byte) (bool, error) {
	if len(pub) != sr25519.PublicKeySize {
		return false, fmt.Errorf("verify: public key must be %d bytes, got %d", sr25519.PublicKeySize, len(pub))
	}
	var pk sr25519.PublicKey
	copy(pk[:], pub)
	ok := sr25519.VerifyContext(pk, s.context, msg, sig)
	s.log.Debug("signature checked", logging.PublicKey("public", pub), zap.Bool("valid", ok))
	return ok, nil
}

// Public returns the index entry for name.
func (s *Service) Public(name domain.KeyName) (domain.KeyInfo, error) {
	info, ok, err := s.index.LoadKeyInfo(name)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	if !ok {
		return domain.KeyInfo{}, fmt.Errorf("%w: %q", store.ErrKeyNotFound, name)
	}
	return info, nil
}

// List returns all index entries sorted by name.
func (s *Service) List() ([]domain.KeyInfo, error) {
	return s.index.ListKeyInfo()
}

// Delete removes the key file and its index entry. An index entry whose key
// file is already gone is still removed; ErrKeyNotFound is returned only when
// neither exists.
func (s *Service) Delete(name domain.KeyName) error {
	fileErr := s.keys.DeleteKey(name)
	if fileErr != nil && !errors.Is(fileErr, store.ErrKeyNotFound) {
		return fileErr
	}
	if fileErr != nil {
		_, indexed, err := s.index.LoadKeyInfo(name)
		if err != nil {
			return err
		}
		if !indexed {
			return fileErr
		}
	}
	if err := s.index.RemoveKeyInfo(name); err != nil {
		return err
	}
	if fileErr != nil {
		s.log.Warn("removed index entry without key file", zap.String("name", name.String()))
		return nil
	}
	s.log.Info("key deleted", zap.String("name", name.String()))
	return nil
}

// Export decrypts the key and returns the phrase it was created from.
func (s *Service) Export(name domain.KeyName, passphrase string) (string, error) {
	rec, err := s.keys.LoadKey(name, passphrase)
	if err != nil {
		return "", err
	}
	defer rec.Wipe()
	if rec.Mnemonic == "" {
		return "", fmt.Errorf("export %q: %w", name, ErrNoMnemonic)
	}
	s.log.Info("mnemonic exported", zap.String("name", name.String()), logging.Redacted("mnemonic"))
	return rec.Mnemonic, nil
}

// ExportSeed decrypts the key and returns its 32-byte seed. The caller
// should wipe the result.
func (s *Service) ExportSeed(name domain.KeyName, passphrase string) ([]byte, error) {
	rec, err := s.keys.LoadKey(name, passphrase)
	if err != nil {
		return nil, err
	}
	defer rec.Wipe()
	s.log.Info("seed exported", zap.String("name", name.String()), logging.Redacted("seed"))
	return append([]byte(nil), rec.Seed[:]...), nil
}

// Address returns the SS58 address of pub under the configured prefix.
func (s *Service) Address(pub []byte) (string, error) {
	return ss58.Encode(pub, s.prefix)
}

func (s *Service) ensureFree(name domain.KeyName) error {
	exists, err := s.keys.HasKey(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %q", store.ErrKeyExists, name)
	}
	return nil
}

func (s *Service) storeMnemonic(
	name domain.KeyName,
	passphrase string,
	m mnemonic.Mnemonic,
	mnemonicPassword string,
) (domain.KeyInfo, error) {
	seed, err := s.factory.MnemonicSeed(m, mnemonicPassword)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	defer memzero.Zero(seed)
	return s.save(name, passphrase, seed, m.String(), s.deriver.Name())
}

// save expands seed, writes the encrypted record and then the index entry.
// If the index write fails the key file is removed again.
func (s *Service) save(
	name domain.KeyName,
	passphrase string,
	seed []byte,
	phrase string,
	derivation string,
) (domain.KeyInfo, error) {
	kp, err := s.factory.Load(seed)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	defer kp.Wipe()

	pub := kp.Public()
	addr, err := ss58.Encode(pub[:], s.prefix)
	if err != nil {
		return domain.KeyInfo{}, err
	}

	rec := domain.KeyRecord{
		Name:       name,
		Scheme:     s.factory.Scheme().String(),
		Public:     domain.Sr25519Public(pub),
		CreatedAt:  s.now().UTC(),
		Mnemonic:   phrase,
		Derivation: derivation,
	}
	copy(rec.Seed[:], seed)
	defer rec.Wipe()

	if err := s.keys.SaveKey(passphrase, rec); err != nil {
		return domain.KeyInfo{}, fmt.Errorf("save key %q: %w", name, err)
	}

	info := domain.KeyInfo{
		Name:        name,
		Scheme:      rec.Scheme,
		Public:      rec.Public,
		Address:     addr,
		Fingerprint: domain.Fingerprint(crypto.Fingerprint(pub[:])),
		HasMnemonic: phrase != "",
		CreatedAt:   rec.CreatedAt,
	}
	if err := s.index.PutKeyInfo(info); err != nil {
		err = fmt.Errorf("index key %q: %w", name, err)
		if rbErr := s.keys.DeleteKey(name); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("roll back key file %q: %w", name, rbErr))
		}
		return domain.KeyInfo{}, err
	}

	s.log.Info("key stored",
		zap.String("name", name.String()),
		zap.String("address", addr),
		zap.String("fingerprint", info.Fingerprint.String()),
		zap.Bool("mnemonic", info.HasMnemonic),
	)
	return info, nil
}

func (s *Service) loadKeyPair(name domain.KeyName, passphrase string) (*sr25519.KeyPair, error) {
	rec, err := s.keys.LoadKey(name, passphrase)
	if err != nil {
		return nil, err
	}
	defer rec.Wipe()
	return s.factory.Load(rec.Seed.Slice())
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
