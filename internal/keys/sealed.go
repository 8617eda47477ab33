package keys

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// SealedPrefix marks passphrase-protected key text.
const SealedPrefix = "audiocrypt-sealed-key:v1:"

const (
	saltSize  = 16
	nonceSize = 24

	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// IsSealed reports whether text is sealed key text.
func IsSealed(text string) bool {
	return strings.HasPrefix(text, SealedPrefix)
}

// Seal encrypts key text under a key derived from passphrase.
func Seal(text string, passphrase []byte) (string, error) {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	key := deriveSealKey(passphrase, salt[:])
	out := make([]byte, 0, saltSize+nonceSize+len(text)+secretbox.Overhead)
	out = append(out, salt[:]...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, []byte(text), &nonce, &key)

	return SealedPrefix + base64.StdEncoding.EncodeToString(out), nil
}

// Unseal reverses Seal. A wrong passphrase or corrupted text returns
// ErrInvalidPassphrase.
func Unseal(sealed string, passphrase []byte) (string, error) {
	if !IsSealed(sealed) {
		return "", fmt.Errorf("%w: missing sealed key prefix", kerrors.ErrMalformedKeyText)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(sealed, SealedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrMalformedKeyText, err)
	}
	if len(raw) < saltSize+nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("%w: sealed key too short", kerrors.ErrMalformedKeyText)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[saltSize:saltSize+nonceSize])
	key := deriveSealKey(passphrase, raw[:saltSize])

	text, ok := secretbox.Open(nil, raw[saltSize+nonceSize:], &nonce, &key)
	if !ok {
		return "", kerrors.ErrInvalidPassphrase
	}
	return string(text), nil
}

func deriveSealKey(passphrase, salt []byte) [32]byte {
	var key [32]byte
	copy(key[:], argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, 32))
	return key
}
