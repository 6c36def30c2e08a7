package interfaces

import domaintypes "srkeys/internal/domain/types"

// KeyStore persists passphrase-encrypted key records.
type KeyStore interface {
	SaveKey(passphrase string, rec domaintypes.KeyRecord) error
	LoadKey(name domaintypes.KeyName, passphrase string) (domaintypes.KeyRecord, error)
	DeleteKey(name domaintypes.KeyName) error
	HasKey(name domaintypes.KeyName) (bool, error)
	ListKeys() ([]domaintypes.KeyName, error)
}

// KeyIndex keeps the public details of stored keys, readable without a
// passphrase.
type KeyIndex interface {
	PutKeyInfo(info domaintypes.KeyInfo) error
	LoadKeyInfo(name domaintypes.KeyName) (domaintypes.KeyInfo, bool, error)
	ListKeyInfo() ([]domaintypes.KeyInfo, error)
	RemoveKeyInfo(name domaintypes.KeyName) error
}
