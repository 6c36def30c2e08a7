package domain

import (
	interfaces "srkeys/internal/domain/interfaces"
	types "srkeys/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyName       = types.KeyName
	Fingerprint   = types.Fingerprint
	Sr25519Public = types.Sr25519Public
	Sr25519Seed   = types.Sr25519Seed
	KeyRecord     = types.KeyRecord
	KeyInfo       = types.KeyInfo
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyStore   = interfaces.KeyStore
	KeyIndex   = interfaces.KeyIndex
	KeyService = interfaces.KeyService
)
