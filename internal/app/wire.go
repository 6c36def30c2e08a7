package app

import (
	"io"
	"os"

	"go.uber.org/zap"

	"srkeys/internal/domain"
	"srkeys/internal/logging"
	"srkeys/internal/mnemonic"
	"srkeys/internal/services/keys"
	"srkeys/internal/store"
)

// Wire bundles the stores, services and logger for the CLI.
type Wire struct {
	Config Config
	Log    *zap.Logger
	Store  domain.KeyStore
	Index  domain.KeyIndex
	Keys   *keys.Service
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut, or
// stderr when it is nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
		Output: logOut,
	})
	if err != nil {
		return nil, err
	}

	kdf, err := store.ParseKDF(cfg.KDF)
	if err != nil {
		return nil, err
	}
	deriver, err := mnemonic.DeriverByName(cfg.Derivation)
	if err != nil {
		return nil, err
	}

	// File-based stores
	keyStore := store.NewKeyFileStore(cfg.Home, kdf)
	index := store.NewIndexFileStore(cfg.Home)

	keySvc := keys.New(keyStore, index,
		keys.WithSeedDeriver(deriver),
		keys.WithSS58Prefix(cfg.SS58Prefix),
		keys.WithSigningContext(cfg.Context),
		keys.WithLogger(log.Named("keys")),
	)

	log.Debug("app wired",
		zap.String("home", cfg.Home),
		zap.String("kdf", string(kdf)),
		zap.String("derivation", deriver.Name()),
		zap.Uint16("ss58_prefix", cfg.SS58Prefix),
	)

	return &Wire{
		Config: cfg,
		Log:    log,
		Store:  keyStore,
		Index:  index,
		Keys:   keySvc,
	}, nil
}

// Close flushes the logger.
func (w *Wire) Close() error {
	// Sync on a terminal stderr returns EINVAL on some platforms.
	_ = w.Log.Sync()
	return nil
}
