package workflows

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/keys"
	"github.com/PolarWolf314/audiocrypt/internal/symmetric"
)

// environment is the configuration, persisted keys and cipher a workflow
// runs with.
type environment struct {
	config *configs.Config
	store  *keys.Store
	cipher symmetric.Cipher
}

// loadEnvironment reads the user config and any persisted keys.
func loadEnvironment() (*environment, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	codec, err := config.Codec()
	if err != nil {
		return nil, err
	}
	cipher, err := config.SymmetricCipher()
	if err != nil {
		return nil, err
	}

	store := keys.NewStore(codec)
	if err := loadPersistedKeys(store); err != nil {
		return nil, err
	}

	return &environment{config: config, store: store, cipher: cipher}, nil
}

func (e *environment) session() *Session {
	return NewSession(e.store, e.cipher, e.config.GenerateOptions())
}

// loadPersistedKeys reads private.key and public.key from the keys
// directory. Missing files are skipped.
func loadPersistedKeys(store *keys.Store) error {
	settings := configs.UserAudiocryptSettings
	paths := map[keys.Kind]string{
		keys.Public:  settings.PublicKeyPath(),
		keys.Private: settings.PrivateKeyPath(),
	}

	for _, kind := range []keys.Kind{keys.Public, keys.Private} {
		err := store.ReadKeyFile(paths[kind], kind)
		if errors.Is(err, kerrors.ErrFileNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("loading persisted %s key: %w", kind, err)
		}
	}
	return nil
}

// persistKey writes the kind half of the store to the keys directory.
func persistKey(store *keys.Store, kind keys.Kind) (string, error) {
	path := configs.UserAudiocryptSettings.PublicKeyPath()
	if kind == keys.Private {
		path = configs.UserAudiocryptSettings.PrivateKeyPath()
	}
	if err := store.WriteKeyFile(path, kind); err != nil {
		return "", err
	}
	return path, nil
}
