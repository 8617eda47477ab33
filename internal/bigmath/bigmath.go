package bigmath

import (
	"fmt"
	"io"
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// ModPow returns base^exp mod m.
//
// A negative base with an odd exponent yields a non-positive result
// (truncated remainder), matching the arithmetic legacy artifacts were
// produced with. The exponent must be non-negative and m positive.
func ModPow(base, exp, m *big.Int) *big.Int {
	if base.Sign() >= 0 {
		return new(big.Int).Exp(base, exp, m)
	}
	r := new(big.Int).Exp(new(big.Int).Neg(base), exp, m)
	if exp.Bit(0) == 1 {
		r.Neg(r)
	}
	return r
}

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// ModInverse returns d in [0, phi) with d*e ≡ 1 (mod phi) using the
// extended Euclidean algorithm. It returns nil when e and phi are not
// coprime.
func ModInverse(e, phi *big.Int) *big.Int {
	oldR, r := new(big.Int).Mod(e, phi), new(big.Int).Set(phi)
	oldS, s := big.NewInt(1), big.NewInt(0)
	q := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)
	}

	if oldR.Cmp(one) != 0 {
		return nil
	}
	return oldS.Mod(oldS, phi)
}

// ModInverseLinear finds d by searching for the smallest k >= 1 such that
// 1 + k*phi is divisible by e. It costs O(e) iterations and exists to
// cross-check ModInverse against the reference key generator. It returns
// nil when no inverse exists.
func ModInverseLinear(e, phi *big.Int) *big.Int {
	if e.Sign() <= 0 || GCD(e, phi).Cmp(one) != 0 {
		return nil
	}
	if e.Cmp(one) == 0 {
		return new(big.Int).Mod(one, phi)
	}

	part := new(big.Int)
	rem := new(big.Int)
	k := big.NewInt(1)
	for {
		part.Mul(k, phi)
		part.Add(part, one)
		if rem.Rem(part, e).Sign() == 0 {
			return new(big.Int).Quo(part, e)
		}
		k.Add(k, one)
	}
}

// RandomBigInt returns a uniformly random non-negative integer below
// 2^(8*byteLength).
func RandomBigInt(r io.Reader, byteLength int) (*big.Int, error) {
	if byteLength < 0 {
		return nil, fmt.Errorf("byte length must be non-negative, got %d", byteLength)
	}
	buf := make([]byte, byteLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return new(big.Int).SetBytes(buf), nil
}

// RandomBigIntInRange returns a uniformly random integer in [min, max).
func RandomBigIntInRange(r io.Reader, min, max *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(max, min)
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("empty range [%s, %s)", min, max)
	}

	// Rejection sampling over the smallest byte-aligned space covering span.
	byteLength := (span.BitLen() + 7) / 8
	excess := uint(byteLength*8 - span.BitLen())
	buf := make([]byte, byteLength)
	n := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[0] &= byte(0xff >> excess)
		n.SetBytes(buf)
		if n.Cmp(span) < 0 {
			return n.Add(n, min), nil
		}
	}
}

// IsZero reports whether x is nil or zero. Unset key slots are zero.
func IsZero(x *big.Int) bool {
	return x == nil || x.Sign() == 0
}

// Clone returns a copy of x, or zero when x is nil.
func Clone(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int).Set(zero)
	}
	return new(big.Int).Set(x)
}
