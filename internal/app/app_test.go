package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srkeys/internal/app"
	"srkeys/internal/mnemonic"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(home), cfg)
	assert.Equal(t, "substrate", cfg.Context)
	assert.Equal(t, uint16(42), cfg.SS58Prefix)
	assert.Equal(t, "scrypt", cfg.KDF)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	home := t.TempDir()
	yml := "ss58_prefix: 2\nderivation: bip39\nkdf: argon2id\nlog_format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, app.ConfigFile), []byte(yml), 0o600))

	cfg, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, uint16(2), cfg.SS58Prefix)
	assert.Equal(t, "bip39", cfg.Derivation)
	assert.Equal(t, "argon2id", cfg.KDF)
	assert.Equal(t, "json", cfg.LogFormat)
	// unset keys keep their defaults
	assert.Equal(t, "substrate", cfg.Context)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"derivation": "derivation: slip10\n",
		"kdf":        "kdf: md5\n",
		"prefix":     "ss58_prefix: 20000\n",
		"level":      "log_level: loud\n",
		"format":     "log_format: xml\n",
		"context":    "context: \"\"\n",
		"yaml":       "kdf: [\n",
	}
	for name, yml := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(home, app.ConfigFile), []byte(yml), 0o600))
			_, err := app.LoadConfig(home)
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_UnknownDerivationIsTyped(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.Derivation = "slip10"
	require.ErrorIs(t, cfg.Validate(), mnemonic.ErrUnknownDerivation)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	cfg := app.DefaultConfig(home)
	cfg.SS58Prefix = 0
	cfg.Context = "test-context"
	require.NoError(t, cfg.Save())

	got, err := app.LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestNewWire_BuildsWorkingService(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	var logs bytes.Buffer

	w, err := app.NewWire(cfg, &logs)
	require.NoError(t, err)
	defer w.Close()

	info, err := w.Keys.Import("dev", "Correct-Horse-9",
		"bottom drive obey lake curtain smoke basket hold race lonely fit walk", "")
	require.NoError(t, err)
	assert.Equal(t, "5DfhGyQdFobKM8NsWvEeAKk5EQQgYe9AydgJ7rMB6E1EqRzV", info.Address)

	ok, err := w.Store.HasKey("dev")
	require.NoError(t, err)
	assert.True(t, ok)

	_, found, err := w.Index.LoadKeyInfo("dev")
	require.NoError(t, err)
	assert.True(t, found)

	assert.Contains(t, logs.String(), `"message":"app wired"`)
	assert.Contains(t, logs.String(), `"message":"key stored"`)
}

func TestNewWire_RejectsInvalidConfig(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.KDF = "md5"
	_, err := app.NewWire(cfg, nil)
	require.Error(t, err)
}
