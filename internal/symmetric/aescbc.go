package symmetric

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// AESCBC is AES-256 in CBC mode with PKCS#7 padding.
type AESCBC struct{}

func (AESCBC) Name() string { return AESCBCSuite }

// Encrypt pads plaintext to a whole number of blocks, always adding at
// least one byte of padding.
func (AESCBC) Encrypt(m Material, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(m.Key[:])
	if err != nil {
		return nil, err
	}

	padded := pad(plaintext, block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, m.IV[:]).CryptBlocks(out, padded)
	return out, nil
}

// Decrypt reverses Encrypt and strips the padding.
func (AESCBC) Decrypt(m Material, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(m.Key[:])
	if err != nil {
		return nil, err
	}

	bs := block.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%bs != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of %d",
			kerrors.ErrInvalidPadding, len(ciphertext), bs)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, m.IV[:]).CryptBlocks(out, ciphertext)
	return unpad(out, bs)
}

func pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, blockSize int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad pad length %d", kerrors.ErrInvalidPadding, n)
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", kerrors.ErrInvalidPadding)
		}
	}
	return b[:len(b)-n], nil
}
