// Package primes implements Miller-Rabin primality testing and random
// prime generation on top of bigmath.
package primes

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/PolarWolf314/audiocrypt/internal/bigmath"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

const (
	// DefaultRounds is the number of Miller-Rabin witnesses per candidate.
	DefaultRounds = 100

	// DefaultMaxAttempts bounds how many candidates Generate samples.
	DefaultMaxAttempts = 100000
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsProbablePrime reports whether n passes rounds of the Miller-Rabin test
// with witnesses drawn from crypto/rand.
func IsProbablePrime(n *big.Int, rounds int) bool {
	ok, err := isProbablePrime(rand.Reader, n, rounds)
	return err == nil && ok
}

func isProbablePrime(r io.Reader, n *big.Int, rounds int) (bool, error) {
	switch {
	case n.Cmp(two) < 0:
		return false, nil
	case n.Cmp(three) <= 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}

	// n-1 = 2^s * d with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	s := int(nMinusOne.TrailingZeroBits())
	d := new(big.Int).Rsh(nMinusOne, uint(s))

	for range rounds {
		a, err := bigmath.RandomBigIntInRange(r, two, nMinusOne)
		if err != nil {
			return false, err
		}
		if !witnessPasses(a, d, n, nMinusOne, s) {
			return false, nil
		}
	}
	return true, nil
}

// witnessPasses runs one Miller-Rabin round. Every one of the s-1
// squarings is examined.
func witnessPasses(a, d, n, nMinusOne *big.Int, s int) bool {
	b := bigmath.ModPow(a, d, n)
	if b.Cmp(one) == 0 || b.Cmp(nMinusOne) == 0 {
		return true
	}
	for j := 1; j < s; j++ {
		b.Mul(b, b).Mod(b, n)
		if b.Cmp(nMinusOne) == 0 {
			return true
		}
		if b.Cmp(one) == 0 {
			// Non-trivial square root of 1.
			return false
		}
	}
	return false
}

// Generator samples random primes of a fixed byte length.
type Generator struct {
	// ByteLength is passed to bigmath.RandomBigInt for each candidate.
	ByteLength int
	// Rounds is the Miller-Rabin round count. Zero means DefaultRounds.
	Rounds int
	// MaxAttempts bounds the number of candidates. Zero means DefaultMaxAttempts.
	MaxAttempts int
	// Rand is the entropy source. Nil means crypto/rand.
	Rand io.Reader
}

// Generate returns the first sampled candidate that passes the test.
//
// It returns ErrPrimeSearchExhausted once MaxAttempts candidates have
// been rejected, and ctx.Err() if the context is done between candidates.
func (g Generator) Generate(ctx context.Context) (*big.Int, error) {
	rounds := g.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	maxAttempts := g.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}

	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := bigmath.RandomBigInt(r, g.ByteLength)
		if err != nil {
			return nil, err
		}
		ok, err := isProbablePrime(r, candidate, rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no prime of %d bytes after %d attempts",
		kerrors.ErrPrimeSearchExhausted, g.ByteLength, maxAttempts)
}

// GenerateRandomPrime samples a prime of byteLength bytes with default
// rounds and attempt budget.
func GenerateRandomPrime(ctx context.Context, byteLength int) (*big.Int, error) {
	return Generator{ByteLength: byteLength}.Generate(ctx)
}
