// Package mnemonic turns BIP-39 word phrases into 32-byte signing seeds.
//
// Contents
//
//   - Generation and parsing: Generate, Parse, Validate, IsValid
//   - The standard BIP-39 seed: ToSeed
//   - Seed derivation for key pairs: SeedDeriver, SubstrateDeriver (default),
//     BIP39Deriver, DeriverByName
//
// # Notes
//
// Phrases are NFKD-normalised and lower-cased before validation. ToSeed
// NFKD-normalises its passphrase as BIP-39 requires; SubstrateDeriver salts
// with the passphrase bytes as given. Word lookup and the
// checksum arithmetic come from github.com/tyler-smith/go-bip39 with its
// English word list.
//
// SubstrateDeriver runs PBKDF2 over the decoded entropy rather than the
// phrase text, which is what Substrate tooling (subkey, polkadot.js) does.
// BIP39Deriver takes the first half of the standard BIP-39 seed. The two
// yield different keys for the same phrase.
package mnemonic
