package primes

import (
	"context"
	"errors"
	"math/big"
	"testing"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"pgregory.net/rapid"
)

func TestIsProbablePrimeKnownValues(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 97, 7919, 65537, 2147483647}
	composites := []int64{0, 1, 4, 9, 100, 7917, 561, 1105, 1729, 2465, 2821, 6601, 8911}

	for _, p := range primes {
		if !IsProbablePrime(big.NewInt(p), DefaultRounds) {
			t.Errorf("Expected %d to be prime", p)
		}
	}
	for _, c := range composites {
		if IsProbablePrime(big.NewInt(c), DefaultRounds) {
			t.Errorf("Expected %d to be composite", c)
		}
	}
}

// Every squaring must be checked. With n-1 = 2^s*d and s >= 3, witnesses
// commonly reach n-1 only after the second or later squaring, so a loop
// that stops after one comparison rejects these primes.
func TestIsProbablePrimeChecksEverySquaring(t *testing.T) {
	for _, p := range []int64{17, 97, 193, 257, 7681, 12289, 40961, 65537} {
		nMinusOne := big.NewInt(p - 1)
		if nMinusOne.TrailingZeroBits() < 3 {
			t.Fatalf("Test prime %d has fewer than 3 factors of two", p)
		}
		for i := 0; i < 20; i++ {
			if !IsProbablePrime(big.NewInt(p), DefaultRounds) {
				t.Fatalf("Expected %d to be prime on run %d", p, i)
			}
		}
	}
}

func TestIsProbablePrimeMatchesStdlib(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := big.NewInt(rapid.Int64Range(0, 1<<32).Draw(rt, "n"))
		if got, want := IsProbablePrime(n, 40), n.ProbablyPrime(40); got != want {
			rt.Fatalf("IsProbablePrime(%s) = %t, ProbablyPrime = %t", n, got, want)
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("ProducesPrime", func(t *testing.T) {
		p, err := Generator{ByteLength: 16}.Generate(context.Background())
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if !p.ProbablyPrime(20) {
			t.Errorf("Expected prime, got %s", p)
		}
		if p.BitLen() > 128 {
			t.Errorf("Expected at most 128 bits, got %d", p.BitLen())
		}
	})

	t.Run("ZeroByteLengthExhausts", func(t *testing.T) {
		_, err := Generator{ByteLength: 0, MaxAttempts: 50}.Generate(context.Background())
		if !errors.Is(err, kerrors.ErrPrimeSearchExhausted) {
			t.Errorf("Expected ErrPrimeSearchExhausted, got %v", err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := GenerateRandomPrime(ctx, 32)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}
