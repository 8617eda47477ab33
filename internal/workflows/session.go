package workflows

import (
	"context"
	"fmt"
	"sync"

	"github.com/PolarWolf314/audiocrypt/internal/engine"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/keys"
	"github.com/PolarWolf314/audiocrypt/internal/symmetric"
	"github.com/PolarWolf314/audiocrypt/internal/wav"
)

// Session owns one container and encrypts it with the keys in a store.
// It is safe for concurrent use; operations run one at a time.
type Session struct {
	mu        sync.Mutex
	store     *keys.Store
	engine    *engine.Engine
	container *wav.Container
	genOpts   keys.GenerateOptions
}

// NewSession returns a session with no container loaded. A nil cipher
// selects AES-256-CBC.
func NewSession(store *keys.Store, cipher symmetric.Cipher, genOpts keys.GenerateOptions) *Session {
	return &Session{
		store:   store,
		engine:  engine.New(store, cipher),
		genOpts: genOpts,
	}
}

// Store returns the session's key store.
func (s *Session) Store() *keys.Store { return s.store }

// LoadFile replaces the current container with the file at path.
func (s *Session) LoadFile(path string) error {
	c, err := wav.LoadFile(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.container = c
	s.mu.Unlock()
	return nil
}

// Load replaces the current container with data.
func (s *Session) Load(name string, data []byte) error {
	c, err := wav.Load(name, data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.container = c
	s.mu.Unlock()
	return nil
}

// Encrypt encrypts the loaded container.
func (s *Session) Encrypt(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.container == nil {
		return kerrors.ErrNoContainer
	}
	return s.engine.Encrypt(s.container)
}

// Decrypt decrypts the loaded container.
func (s *Session) Decrypt(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.container == nil {
		return kerrors.ErrNoContainer
	}
	return s.engine.Decrypt(s.container)
}

// SaveFile writes the loaded container to path.
func (s *Session) SaveFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.container == nil {
		return kerrors.ErrNoContainer
	}
	return s.container.SaveFile(path)
}

// Bytes returns the serialized container.
func (s *Session) Bytes() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.container == nil {
		return nil, kerrors.ErrNoContainer
	}
	return s.container.Bytes()
}

// Describe returns the metadata dump of the loaded container.
func (s *Session) Describe() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.container == nil {
		return "", kerrors.ErrNoContainer
	}
	return s.container.Describe(), nil
}

// State returns the container state, or wav.Empty when nothing is loaded.
func (s *Session) State() wav.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.container == nil {
		return wav.Empty
	}
	return s.container.State()
}

// GenerateKeyPair replaces the store's key pair with a fresh one.
func (s *Session) GenerateKeyPair(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.store.Generate(ctx, s.genOpts)
	return err
}

// ImportKey loads key text into the kind slot.
func (s *Session) ImportKey(kind keys.Kind, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Deserialize(kind, keys.CleanKeyText(text))
}

// ExportKeyText returns the kind half of the key pair as text. It fails
// with ErrKeyUnavailable when that half is not set.
func (s *Session) ExportKeyText(kind keys.Kind) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Has(kind) {
		return "", fmt.Errorf("%w: %s key not set", kerrors.ErrKeyUnavailable, kind)
	}
	return s.store.Serialize(kind), nil
}

// ExportKeyToFile writes the kind half of the key pair to path.
func (s *Session) ExportKeyToFile(kind keys.Kind, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Has(kind) {
		return fmt.Errorf("%w: %s key not set", kerrors.ErrKeyUnavailable, kind)
	}
	return s.store.WriteKeyFile(path, kind)
}
