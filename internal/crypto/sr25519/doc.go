// Package sr25519 implements Schnorr signatures over the ristretto255 group,
// compatible with the schnorrkel construction used by Substrate.
//
// Contents
//
//   - Key material: MiniSecretKey (32-byte seed), SecretKey (expanded scalar
//     and nonce seed), PublicKey, Signature
//   - Key pairs: Generate, Load, LoadSecretKey, NewPublicKeyPair
//   - Signing and verification: KeyPair.Sign, KeyPair.SignContext, Verify,
//     VerifyContext
//   - Disposal: KeyPair.Wipe, KeyPair.Clone
//
// # Notes
//
// Seeds are expanded in schnorrkel's Ed25519 mode: SHA-512 of the seed,
// clamped like an Ed25519 secret and divided by the cofactor. Signing is
// deterministic. The nonce is drawn from a transcript that absorbs the secret
// nonce seed together with the public key, signing context and message.
//
// Verify never panics on attacker-controlled input and reports malformed
// keys or signatures as a failed verification.
//
// This package performs no I/O and no logging beyond reading from the entropy
// source handed to Generate.
package sr25519
