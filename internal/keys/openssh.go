package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/ssh"

	"github.com/PolarWolf314/audiocrypt/internal/bigmath"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// IsOpenSSH reports whether text looks like an OpenSSH authorized_keys line
// or a PEM private key rather than key text.
func IsOpenSSH(text string) bool {
	return strings.HasPrefix(text, "ssh-rsa ") || strings.HasPrefix(text, "-----BEGIN ")
}

// FromOpenSSH converts an RSA key in OpenSSH or PEM form into key text for
// the kind half. A private key file serves either kind; an authorized_keys
// line only serves Public. The wrapped key length is codec.Len(n).
//
// Returns ErrPassphraseRequired if the private key is protected and
// passphrase is empty, and ErrInvalidPassphrase if it does not open it.
func FromOpenSSH(data []byte, kind Kind, passphrase []byte, codec bigmath.Codec) (string, error) {
	if codec == nil {
		codec = bigmath.BigEndian
	}

	var pair KeyPair
	if strings.HasPrefix(string(data), "-----BEGIN ") {
		priv, err := parseOpenSSHPrivateKey(data, passphrase)
		if err != nil {
			return "", err
		}
		pair = KeyPair{
			Modulus:         priv.N,
			PublicExponent:  big.NewInt(int64(priv.E)),
			PrivateExponent: priv.D,
		}
	} else {
		if kind == Private {
			return "", fmt.Errorf("%w: an authorized_keys line holds no private exponent", kerrors.ErrMalformedKeyText)
		}
		pub, err := parseOpenSSHPublicKey(data)
		if err != nil {
			return "", err
		}
		pair = KeyPair{
			Modulus:        pub.N,
			PublicExponent: big.NewInt(int64(pub.E)),
		}
	}

	pair.WrappedKeyByteLength = codec.Len(pair.Modulus)
	return FormatKey(pair, kind), nil
}

func parseOpenSSHPrivateKey(data, passphrase []byte) (*rsa.PrivateKey, error) {
	var (
		key any
		err error
	)
	if len(passphrase) > 0 {
		key, err = ssh.ParseRawPrivateKeyWithPassphrase(data, passphrase)
	} else {
		key, err = ssh.ParseRawPrivateKey(data)
	}

	var missing *ssh.PassphraseMissingError
	switch {
	case errors.As(err, &missing):
		return nil, kerrors.ErrPassphraseRequired
	case errors.Is(err, x509.IncorrectPasswordError):
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPassphrase, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", kerrors.ErrMalformedKeyText, err)
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T", kerrors.ErrUnsupportedKeyType, key)
	}
	return priv, nil
}

func parseOpenSSHPublicKey(data []byte) (*rsa.PublicKey, error) {
	pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrMalformedKeyText, err)
	}
	cryptoPub, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrUnsupportedKeyType, pub.Type())
	}
	rsaPub, ok := cryptoPub.CryptoPublicKey().(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrUnsupportedKeyType, pub.Type())
	}
	return rsaPub, nil
}
