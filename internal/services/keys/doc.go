// Package keys manages named sr25519 signing keys.
//
// It enforces the passphrase policy, creates keys from fresh mnemonics or
// imports them from a phrase or raw seed, and persists them through
// domain.KeyStore (encrypted) and domain.KeyIndex (public details). Secret
// material is loaded only for the duration of a Sign or Export call and wiped
// afterwards.
package keys
