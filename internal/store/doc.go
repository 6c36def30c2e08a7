// Package store provides file-based persistence for signing keys.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Files live under <home>/keys with owner-only permissions
// and are replaced atomically.
//
// The package includes stores for:
//   - Encrypted key records (KeyFileStore), one <name>.key.enc per key
//   - The public key index (IndexFileStore), index.json
//
// Key files are JSON envelopes sealed with ChaCha20-Poly1305 under a key
// derived from the passphrase with scrypt (format v1) or argon2id (v2).
package store
