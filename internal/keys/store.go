package keys

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/PolarWolf314/audiocrypt/internal/bigmath"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/primes"
)

const (
	// DefaultPrimeByteLength is the byte length of each generated prime.
	DefaultPrimeByteLength = 32

	// maxModulusAttempts bounds redraws of the prime pair.
	maxModulusAttempts = 64

	// maxExponentAttempts bounds the public exponent search for one phi.
	maxExponentAttempts = 1000
)

var (
	one = big.NewInt(1)

	// Public exponents are drawn from [exponentMin, exponentMax).
	exponentMin = big.NewInt(10)
	exponentMax = big.NewInt(99)
)

// GenerateOptions controls key generation.
type GenerateOptions struct {
	// PrimeByteLength is the byte length of each prime. Zero means
	// DefaultPrimeByteLength.
	PrimeByteLength int

	// Rounds is the Miller-Rabin round count. Zero means primes.DefaultRounds.
	Rounds int

	// MaxAttempts bounds the candidates sampled per prime. Zero means
	// primes.DefaultMaxAttempts.
	MaxAttempts int

	// MinModulusBytes redraws the prime pair until the encoded modulus is at
	// least this long.
	MinModulusBytes int

	// Rand is the entropy source. Nil means crypto/rand.
	Rand io.Reader
}

// Store holds the current key pair.
type Store struct {
	mu    sync.RWMutex
	pair  KeyPair
	codec bigmath.Codec
}

// NewStore returns an empty store using codec for block encoding. A nil
// codec selects bigmath.BigEndian.
func NewStore(codec bigmath.Codec) *Store {
	if codec == nil {
		codec = bigmath.BigEndian
	}
	return &Store{codec: codec}
}

// Codec returns the block codec.
func (s *Store) Codec() bigmath.Codec {
	return s.codec
}

// KeyPair returns a copy of the current pair.
func (s *Store) KeyPair() KeyPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.Clone()
}

// SetKeyPair replaces the current pair with a copy of pair.
func (s *Store) SetKeyPair(pair KeyPair) {
	pair = pair.Clone()
	s.mu.Lock()
	s.pair = pair
	s.mu.Unlock()
}

// Has reports whether the kind half of the current pair is usable.
func (s *Store) Has(kind Kind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.Has(kind)
}

// Generate creates a fresh key pair and installs it. The previous pair
// stays in place if generation fails.
func (s *Store) Generate(ctx context.Context, opts GenerateOptions) (KeyPair, error) {
	pair, err := GenerateKeyPair(ctx, s.codec, opts)
	if err != nil {
		return KeyPair{}, err
	}
	s.SetKeyPair(pair)
	return pair, nil
}

// GenerateKeyPair creates a key pair whose WrappedKeyByteLength is the
// modulus length under codec.
func GenerateKeyPair(ctx context.Context, codec bigmath.Codec, opts GenerateOptions) (KeyPair, error) {
	if codec == nil {
		codec = bigmath.BigEndian
	}
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}
	byteLength := opts.PrimeByteLength
	if byteLength <= 0 {
		byteLength = DefaultPrimeByteLength
	}
	gen := primes.Generator{
		ByteLength:  byteLength,
		Rounds:      opts.Rounds,
		MaxAttempts: opts.MaxAttempts,
		Rand:        r,
	}

	for range maxModulusAttempts {
		p1, err := gen.Generate(ctx)
		if err != nil {
			return KeyPair{}, err
		}
		p2, err := gen.Generate(ctx)
		if err != nil {
			return KeyPair{}, err
		}
		if p1.Cmp(p2) == 0 {
			continue
		}

		n := new(big.Int).Mul(p1, p2)
		if codec.Len(n) < opts.MinModulusBytes {
			continue
		}
		phi := new(big.Int).Mul(new(big.Int).Sub(p1, one), new(big.Int).Sub(p2, one))
		if phi.Cmp(exponentMax) <= 0 {
			continue
		}

		e, err := choosePublicExponent(r, phi)
		if err != nil {
			return KeyPair{}, err
		}
		d := bigmath.ModInverse(e, phi)

		return KeyPair{
			Modulus:              n,
			PublicExponent:       e,
			PrivateExponent:      d,
			WrappedKeyByteLength: codec.Len(n),
		}, nil
	}

	return KeyPair{}, fmt.Errorf("%w: no usable prime pair of %d bytes after %d draws",
		kerrors.ErrPrimeSearchExhausted, byteLength, maxModulusAttempts)
}

func choosePublicExponent(r io.Reader, phi *big.Int) (*big.Int, error) {
	for range maxExponentAttempts {
		e, err := bigmath.RandomBigIntInRange(r, exponentMin, exponentMax)
		if err != nil {
			return nil, err
		}
		if bigmath.GCD(e, phi).Cmp(one) == 0 {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: after %d attempts", kerrors.ErrExponentSearchExhausted, maxExponentAttempts)
}

// Serialize returns the kind half of the current pair as key text.
func (s *Store) Serialize(kind Kind) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FormatKey(s.pair, kind)
}

// Deserialize parses key text into the kind exponent, the modulus and the
// wrapped key byte length. The store is unchanged when text is malformed.
func (s *Store) Deserialize(kind Kind, text string) error {
	exponent, modulus, length, err := ParseKey(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == Private {
		s.pair.PrivateExponent = exponent
	} else {
		s.pair.PublicExponent = exponent
	}
	s.pair.Modulus = modulus
	s.pair.WrappedKeyByteLength = length
	return nil
}

// EncryptBlock computes b^e mod n and encodes the result in exactly
// WrappedKeyByteLength bytes.
func (s *Store) EncryptBlock(b []byte) ([]byte, error) {
	s.mu.RLock()
	pair := s.pair
	s.mu.RUnlock()

	if !pair.Has(Public) {
		return nil, fmt.Errorf("%w: public key not set", kerrors.ErrKeyUnavailable)
	}

	m := s.codec.Decode(b)
	if new(big.Int).Abs(m).Cmp(pair.Modulus) >= 0 {
		return nil, fmt.Errorf("%w: %d byte block exceeds modulus", kerrors.ErrBlockTooLarge, len(b))
	}

	c := bigmath.ModPow(m, pair.PublicExponent, pair.Modulus)
	return s.codec.Encode(c, pair.WrappedKeyByteLength)
}

// DecryptBlock computes b^d mod n and returns its minimal encoding.
func (s *Store) DecryptBlock(b []byte) ([]byte, error) {
	m, err := s.decrypt(b)
	if err != nil {
		return nil, err
	}
	return s.codec.Encode(m, s.codec.Len(m))
}

// DecryptBlockSized is DecryptBlock with the result encoded in exactly size
// bytes. Leading zero bytes dropped by the minimal encoding are restored.
func (s *Store) DecryptBlockSized(b []byte, size int) ([]byte, error) {
	m, err := s.decrypt(b)
	if err != nil {
		return nil, err
	}
	out, err := s.codec.Encode(m, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrKeyDecryptFailed, err)
	}
	return out, nil
}

func (s *Store) decrypt(b []byte) (*big.Int, error) {
	s.mu.RLock()
	pair := s.pair
	s.mu.RUnlock()

	if !pair.Has(Private) {
		return nil, fmt.Errorf("%w: private key not set", kerrors.ErrKeyUnavailable)
	}

	c := s.codec.Decode(b)
	return bigmath.ModPow(c, pair.PrivateExponent, pair.Modulus), nil
}
