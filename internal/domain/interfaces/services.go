package interfaces

import domaintypes "srkeys/internal/domain/types"

// KeyService creates, imports, uses and removes named signing keys.
type KeyService interface {
	Create(
		name domaintypes.KeyName,
		passphrase string,
		words int,
	) (domaintypes.KeyInfo, string, error)
	Import(
		name domaintypes.KeyName,
		passphrase string,
		phrase string,
		mnemonicPassword string,
	) (domaintypes.KeyInfo, error)
	ImportSeed(
		name domaintypes.KeyName,
		passphrase string,
		seed []byte,
	) (domaintypes.KeyInfo, error)
	Sign(name domaintypes.KeyName, passphrase string, msg []byte) ([]byte, error)
	Verify(pub []byte, msg []byte, sig []byte) (bool, error)
	Public(name domaintypes.KeyName) (domaintypes.KeyInfo, error)
	List() ([]domaintypes.KeyInfo, error)
	Delete(name domaintypes.KeyName) error
	Export(name domaintypes.KeyName, passphrase string) (string, error)
}
