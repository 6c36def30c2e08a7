// Package app wires application dependencies for the CLI.
//
// It loads Config from <home>/config.yaml, builds the logger, the file-backed
// key store and index, and the key service, and exposes them via Wire for
// commands to use.
package app
