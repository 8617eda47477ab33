package symmetric

import (
	"fmt"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

// Secretbox is NaCl secretbox keyed by the material key.
type Secretbox struct{}

func (Secretbox) Name() string { return SecretboxSuite }

func (Secretbox) Encrypt(m Material, plaintext []byte) ([]byte, error) {
	nonce := secretboxNonce(m)
	return secretbox.Seal(nil, plaintext, &nonce, &m.Key), nil
}

func (Secretbox) Decrypt(m Material, ciphertext []byte) ([]byte, error) {
	nonce := secretboxNonce(m)
	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, &m.Key)
	if !ok {
		return nil, fmt.Errorf("%w: secretbox authentication failed", kerrors.ErrInvalidPadding)
	}
	return plaintext, nil
}

func secretboxNonce(m Material) [24]byte {
	var nonce [24]byte
	copy(nonce[:], m.IV[:])
	return nonce
}
