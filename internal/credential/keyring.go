package credential

import (
	"github.com/99designs/keyring"
	"github.com/pkg/errors"
)

const (
	serviceName = "pricehawk"
	itemKey     = "access_token"
)

type Keyring struct {
	ring keyring.Keyring
}

// OpenKeyring opens the system keyring for pricehawk, falling back to an
// encrypted file under fileDir on platforms without a native backend.
func OpenKeyring(fileDir string) (*Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(serviceName + "-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error opening keyring")
	}
	return &Keyring{ring: ring}, nil
}

func (k *Keyring) Get() (string, error) {
	item, err := k.ring.Get(itemKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "error getting credential %q from keyring", itemKey)
	}
	return string(item.Data), nil
}

func (k *Keyring) Set(token string) error {
	err := k.ring.Set(keyring.Item{
		Key:  itemKey,
		Data: []byte(token),
	})
	return errors.Wrapf(err, "error setting credential %q in keyring", itemKey)
}

func (k *Keyring) Clear() error {
	err := k.ring.Remove(itemKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return errors.Wrapf(err, "error removing credential %q from keyring", itemKey)
}
