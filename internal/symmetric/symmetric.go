package symmetric

import (
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

const (
	// KeySize is the symmetric key length in bytes.
	KeySize = 32
	// IVSize is the initialization vector length in bytes.
	IVSize = 16
	// MaterialSize is the length of the serialized key||iv block.
	MaterialSize = KeySize + IVSize
)

// Suite names accepted in configuration.
const (
	AESCBCSuite    = "aes-256-cbc"
	SecretboxSuite = "secretbox"
)

// Material is a symmetric key and initialization vector pair.
type Material struct {
	Key [KeySize]byte
	IV  [IVSize]byte
}

// Generate returns fresh key material read from r, or from crypto/rand
// when r is nil.
func Generate(r io.Reader) (Material, error) {
	if r == nil {
		r = rand.Reader
	}
	var m Material
	if _, err := io.ReadFull(r, m.Key[:]); err != nil {
		return Material{}, fmt.Errorf("failed to generate symmetric key: %w", err)
	}
	if _, err := io.ReadFull(r, m.IV[:]); err != nil {
		return Material{}, fmt.Errorf("failed to generate initialization vector: %w", err)
	}
	return m, nil
}

// Bytes returns key||iv.
func (m Material) Bytes() []byte {
	out := make([]byte, 0, MaterialSize)
	out = append(out, m.Key[:]...)
	return append(out, m.IV[:]...)
}

// MaterialFromBytes splits a key||iv block.
func MaterialFromBytes(b []byte) (Material, error) {
	if len(b) != MaterialSize {
		return Material{}, fmt.Errorf("%w: key material must be %d bytes, got %d",
			kerrors.ErrKeyDecryptFailed, MaterialSize, len(b))
	}
	var m Material
	copy(m.Key[:], b[:KeySize])
	copy(m.IV[:], b[KeySize:])
	return m, nil
}

// Cipher encrypts and decrypts whole buffers under key material.
type Cipher interface {
	Name() string
	Encrypt(m Material, plaintext []byte) ([]byte, error)
	Decrypt(m Material, ciphertext []byte) ([]byte, error)
}

// ForSuite returns the cipher registered under name. An empty name selects
// AES-256-CBC.
func ForSuite(name string) (Cipher, error) {
	switch name {
	case "", AESCBCSuite:
		return AESCBC{}, nil
	case SecretboxSuite:
		return Secretbox{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrUnknownCipherSuite, name)
	}
}
