package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"srkeys/internal/crypto/sr25519"
	"srkeys/internal/logging"
	"srkeys/internal/mnemonic"
	"srkeys/internal/ss58"
	"srkeys/internal/store"
)

// ConfigFile is the name of the optional config file inside the home dir.
const ConfigFile = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string `yaml:"-"`           // config directory, e.g. $HOME/.srkeys
	Context    string `yaml:"context"`     // sr25519 signing context
	SS58Prefix uint16 `yaml:"ss58_prefix"` // network prefix for addresses
	Derivation string `yaml:"derivation"`  // "substrate" or "bip39"
	KDF        string `yaml:"kdf"`         // "scrypt" or "argon2id"
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"` // "console" or "json"
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig(home string) Config {
	return Config{
		Home:       home,
		Context:    sr25519.DefaultContext,
		SS58Prefix: ss58.SubstratePrefix,
		Derivation: mnemonic.SubstrateDeriver{}.Name(),
		KDF:        string(store.KDFScrypt),
		LogLevel:   "warn",
		LogFormat:  string(logging.FormatConsole),
	}
}

// DefaultHome returns $SRKEYS_HOME, or ~/.srkeys when it is unset.
func DefaultHome() (string, error) {
	if h := os.Getenv("SRKEYS_HOME"); h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".srkeys"), nil
}

// LoadConfig reads <home>/config.yaml over the defaults. A missing file is
// not an error.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	b, err := os.ReadFile(filepath.Join(home, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	cfg.Home = home
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to <home>/config.yaml.
func (c Config) Save() error {
	if err := os.MkdirAll(c.Home, 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Home, ConfigFile), b, 0o600)
}

// Validate checks that every enumerated setting names something known.
func (c Config) Validate() error {
	if c.Context == "" {
		return errors.New("config: empty signing context")
	}
	if c.SS58Prefix > ss58.MaxPrefix {
		return fmt.Errorf("config: %w: %d", ss58.ErrInvalidPrefix, c.SS58Prefix)
	}
	if _, err := mnemonic.DeriverByName(c.Derivation); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := store.ParseKDF(c.KDF); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
