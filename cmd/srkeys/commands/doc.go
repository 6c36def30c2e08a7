// Package commands defines the srkeys CLI and wires dependencies for subcommands.
//
// Commands
//
//   - mnemonic new       Print a fresh recovery phrase
//   - mnemonic validate  Check a phrase's words and checksum
//   - keygen             Create a named key from a new phrase
//   - import             Store a named key from a phrase or raw seed
//   - list               List stored keys
//   - pubkey             Print a key's public key and address
//   - sign               Sign a message with a named key
//   - verify             Verify a signature against a public key or address
//   - delete             Remove a stored key
//   - export             Print a key's phrase or seed
//
// # Implementation
//
// The root command loads <home>/config.yaml and builds the dependency graph
// (stores, key service, logger) before any subcommand runs. Byte values are
// printed and accepted as 0x-prefixed hex.
package commands
