// Package engine applies hybrid encryption to a WAV container payload.
//
// Encrypt replaces the payload with
//
//	symmetric ciphertext || RSA(key || iv)
//
// where the wrapped blob is exactly WrappedKeyByteLength bytes. Decrypt
// reverses it. Both operations stage their output and commit payload and
// state together, so a failed call leaves the container untouched.
package engine

import (
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/keys"
	"github.com/PolarWolf314/audiocrypt/internal/symmetric"
	"github.com/PolarWolf314/audiocrypt/internal/wav"
)

// Engine encrypts and decrypts container payloads with the keys in a Store.
type Engine struct {
	store  *keys.Store
	cipher symmetric.Cipher
	rand   io.Reader
}

// New returns an engine using store for key wrapping and cipher for the
// payload. A nil cipher selects AES-256-CBC.
func New(store *keys.Store, cipher symmetric.Cipher) *Engine {
	if cipher == nil {
		cipher = symmetric.AESCBC{}
	}
	return &Engine{store: store, cipher: cipher, rand: rand.Reader}
}

// Cipher returns the payload cipher.
func (e *Engine) Cipher() symmetric.Cipher { return e.cipher }

// Store returns the key store.
func (e *Engine) Store() *keys.Store { return e.store }

// Encrypt encrypts the container payload under fresh key material and
// appends the wrapped material. It fails with ErrInvalidState when the
// container is empty or already encrypted and with ErrKeyUnavailable when
// no public key is set.
func (e *Engine) Encrypt(c *wav.Container) error {
	switch c.State() {
	case wav.Empty, wav.Encrypted:
		return fmt.Errorf("%w: cannot encrypt %s container", kerrors.ErrInvalidState, c.State())
	}
	if !e.store.Has(keys.Public) {
		return fmt.Errorf("%w: public key not set", kerrors.ErrKeyUnavailable)
	}

	m, err := symmetric.Generate(e.rand)
	if err != nil {
		return err
	}
	ciphertext, err := e.cipher.Encrypt(m, c.Payload())
	if err != nil {
		return fmt.Errorf("failed to encrypt payload: %w", err)
	}
	blob, err := e.store.EncryptBlock(m.Bytes())
	if err != nil {
		return fmt.Errorf("failed to wrap key material: %w", err)
	}

	c.Commit(append(ciphertext, blob...), wav.Encrypted)
	return nil
}

// Decrypt unwraps the trailing key material and decrypts the rest of the
// payload. It fails with ErrInvalidState when the container is empty or
// already decrypted, ErrKeyUnavailable when no private key is set, and
// ErrKeyDecryptFailed or ErrInvalidPadding when the key does not match.
func (e *Engine) Decrypt(c *wav.Container) error {
	switch c.State() {
	case wav.Empty, wav.Decrypted:
		return fmt.Errorf("%w: cannot decrypt %s container", kerrors.ErrInvalidState, c.State())
	}
	if !e.store.Has(keys.Private) {
		return fmt.Errorf("%w: private key not set", kerrors.ErrKeyUnavailable)
	}

	payload := c.Payload()
	width := e.store.KeyPair().WrappedKeyByteLength
	if width <= 0 || len(payload) < width {
		return fmt.Errorf("%w: payload of %d bytes is shorter than the %d byte key blob",
			kerrors.ErrInvalidPayload, len(payload), width)
	}
	body, blob := payload[:len(payload)-width], payload[len(payload)-width:]

	raw, err := e.store.DecryptBlockSized(blob, symmetric.MaterialSize)
	if err != nil {
		return fmt.Errorf("failed to unwrap key material: %w", err)
	}
	m, err := symmetric.MaterialFromBytes(raw)
	if err != nil {
		return err
	}

	plaintext, err := e.cipher.Decrypt(m, body)
	if err != nil {
		return fmt.Errorf("failed to decrypt payload: %w", err)
	}

	c.Commit(plaintext, wav.Decrypted)
	return nil
}
