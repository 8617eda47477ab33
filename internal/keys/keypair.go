package keys

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/PolarWolf314/audiocrypt/internal/bigmath"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// KeyPair is a textbook RSA key. Nil or zero fields are unset.
type KeyPair struct {
	Modulus              *big.Int
	PublicExponent       *big.Int
	PrivateExponent      *big.Int
	WrappedKeyByteLength int
}

// Clone returns a deep copy of the pair.
func (p KeyPair) Clone() KeyPair {
	return KeyPair{
		Modulus:              bigmath.Clone(p.Modulus),
		PublicExponent:       bigmath.Clone(p.PublicExponent),
		PrivateExponent:      bigmath.Clone(p.PrivateExponent),
		WrappedKeyByteLength: p.WrappedKeyByteLength,
	}
}

// Exponent returns the exponent for kind.
func (p KeyPair) Exponent(kind Kind) *big.Int {
	if kind == Private {
		return p.PrivateExponent
	}
	return p.PublicExponent
}

// Has reports whether the exponent for kind and the modulus are both set.
func (p KeyPair) Has(kind Kind) bool {
	return !bigmath.IsZero(p.Exponent(kind)) && !bigmath.IsZero(p.Modulus)
}

// FormatKey renders the kind half of pair as "exponent,modulus,length".
func FormatKey(pair KeyPair, kind Kind) string {
	return bigmath.Clone(pair.Exponent(kind)).String() + "," +
		bigmath.Clone(pair.Modulus).String() + "," +
		strconv.Itoa(pair.WrappedKeyByteLength)
}

// ParseKey parses "exponent,modulus,length". Each field must be a
// non-empty run of decimal digits.
func ParseKey(text string) (exponent, modulus *big.Int, length int, err error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return nil, nil, 0, fmt.Errorf("%w: expected 3 fields, got %d", kerrors.ErrMalformedKeyText, len(fields))
	}

	exponent, err = parseDecimal(fields[0])
	if err != nil {
		return nil, nil, 0, fmt.Errorf("exponent: %w", err)
	}
	modulus, err = parseDecimal(fields[1])
	if err != nil {
		return nil, nil, 0, fmt.Errorf("modulus: %w", err)
	}

	if !isDigits(fields[2]) {
		return nil, nil, 0, fmt.Errorf("%w: length %q is not a decimal number", kerrors.ErrMalformedKeyText, fields[2])
	}
	length, err = strconv.Atoi(fields[2])
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%w: length %q: %v", kerrors.ErrMalformedKeyText, fields[2], err)
	}

	return exponent, modulus, length, nil
}

func parseDecimal(s string) (*big.Int, error) {
	if !isDigits(s) {
		return nil, fmt.Errorf("%w: %q is not a decimal number", kerrors.ErrMalformedKeyText, s)
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a decimal number", kerrors.ErrMalformedKeyText, s)
	}
	return x, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
