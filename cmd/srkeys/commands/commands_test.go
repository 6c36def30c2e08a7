package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPass  = "Correct-Horse-9"
	devPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"
	devPublic = "0x46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a"
	devAddr   = "5DfhGyQdFobKM8NsWvEeAKk5EQQgYe9AydgJ7rMB6E1EqRzV"
)

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestMnemonicCommands(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "mnemonic", "new", "--words", "24")
	require.NoError(t, err)
	phrase := strings.TrimSpace(out)
	assert.Len(t, strings.Fields(phrase), 24)

	out, err = run(t, home, "mnemonic", "validate", phrase)
	require.NoError(t, err)
	assert.Contains(t, out, "valid (24 words)")

	_, err = run(t, home, "mnemonic", "validate", strings.Repeat("abandon ", 12))
	require.Error(t, err)

	_, err = run(t, home, "mnemonic", "new", "--words", "11")
	require.Error(t, err)
}

func TestImportSignVerify(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "-p", testPass, "import", "dev", "--phrase", devPhrase)
	require.NoError(t, err)
	assert.Contains(t, out, devPublic)
	assert.Contains(t, out, devAddr)

	out, err = run(t, home, "pubkey", "dev")
	require.NoError(t, err)
	assert.Contains(t, out, devAddr)

	out, err = run(t, home, "-p", testPass, "sign", "dev", "hello")
	require.NoError(t, err)
	sig := strings.TrimSpace(out)
	require.True(t, strings.HasPrefix(sig, "0x"))
	assert.Len(t, sig, 2+128)

	out, err = run(t, home, "verify", devPublic, "hello", sig)
	require.NoError(t, err)
	assert.Contains(t, out, "signature is valid")

	out, err = run(t, home, "verify", devAddr, "hello", sig)
	require.NoError(t, err)
	assert.Contains(t, out, "signature is valid")

	_, err = run(t, home, "verify", devAddr, "hellp", sig)
	require.Error(t, err)

	// "hello" as hex
	out, err = run(t, home, "verify", "--hex", devPublic, "0x68656c6c6f", sig)
	require.NoError(t, err)
	assert.Contains(t, out, "signature is valid")
}

func TestKeygenListExportDelete(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "-p", testPass, "keygen", "alice")
	require.NoError(t, err)
	require.Contains(t, out, "Phrase:")
	var phrase string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Phrase:") {
			phrase = strings.TrimSpace(strings.TrimPrefix(line, "Phrase:"))
		}
	}
	require.Len(t, strings.Fields(phrase), 12)

	out, err = run(t, home, "-p", testPass, "export", "alice")
	require.NoError(t, err)
	assert.Equal(t, phrase, strings.TrimSpace(out))

	out, err = run(t, home, "-p", testPass, "export", "--seed", "alice")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 2+64)

	out, err = run(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")

	_, err = run(t, home, "delete", "alice")
	require.NoError(t, err)

	out, err = run(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no keys")
}

func TestImportSeed(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, home, "-p", testPass, "import", "raw",
		"--seed", "0xfac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e")
	require.NoError(t, err)
	assert.Contains(t, out, devAddr)

	_, err = run(t, home, "-p", testPass, "export", "raw")
	require.Error(t, err)
}

func TestPassphraseRequired(t *testing.T) {
	home := t.TempDir()
	for _, args := range [][]string{
		{"keygen", "a"},
		{"import", "a", "--phrase", devPhrase},
		{"sign", "a", "msg"},
		{"export", "a"},
	} {
		_, err := run(t, home, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "passphrase required", args)
	}
}

func TestImportFlagConflicts(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "-p", testPass, "import", "a")
	require.Error(t, err)
	_, err = run(t, home, "-p", testPass, "import", "a", "--phrase", devPhrase, "--seed", "00")
	require.Error(t, err)
}
