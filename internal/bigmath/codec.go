package bigmath

import (
	"fmt"
	"math/big"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// Codec converts between byte buffers and integers.
type Codec interface {
	// Name returns the configuration name of the codec.
	Name() string
	// Decode interprets b as an integer.
	Decode(b []byte) *big.Int
	// Encode writes x into exactly size bytes.
	Encode(x *big.Int, size int) ([]byte, error)
	// Len returns the minimal encoded length of x.
	Len(x *big.Int) int
}

// Codec names accepted in configuration.
const (
	BigEndianName          = "big-endian"
	LegacyLittleEndianName = "legacy-le"
)

var (
	// BigEndian is the unsigned big-endian codec.
	BigEndian Codec = bigEndian{}

	// LegacyLittleEndian is the little-endian two's complement codec.
	LegacyLittleEndian Codec = legacyLittleEndian{}
)

// CodecByName returns the codec registered under name. An empty name
// selects BigEndian.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", BigEndianName:
		return BigEndian, nil
	case LegacyLittleEndianName:
		return LegacyLittleEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrUnknownKeyEncoding, name)
	}
}

type bigEndian struct{}

func (bigEndian) Name() string { return BigEndianName }

func (bigEndian) Decode(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func (bigEndian) Encode(x *big.Int, size int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value in unsigned encoding", kerrors.ErrBlockTooLarge)
	}
	if n := len(x.Bytes()); n > size {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", kerrors.ErrBlockTooLarge, n, size)
	}
	return x.FillBytes(make([]byte, size)), nil
}

func (bigEndian) Len(x *big.Int) int {
	return len(x.Bytes())
}

type legacyLittleEndian struct{}

func (legacyLittleEndian) Name() string { return LegacyLittleEndianName }

func (legacyLittleEndian) Decode(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	x := new(big.Int).SetBytes(reversed(b))
	if b[len(b)-1]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(one, uint(8*len(b))))
	}
	return x
}

func (c legacyLittleEndian) Encode(x *big.Int, size int) ([]byte, error) {
	n := c.Len(x)
	if n > size {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", kerrors.ErrBlockTooLarge, n, size)
	}

	v := new(big.Int).Set(x)
	if x.Sign() < 0 {
		v.Add(v, new(big.Int).Lsh(one, uint(8*size)))
	}
	return reversed(v.FillBytes(make([]byte, size))), nil
}

// Len is the length of the minimal two's complement form, which includes a
// sign byte whenever the top bit of the magnitude is set.
func (legacyLittleEndian) Len(x *big.Int) int {
	if x.Sign() >= 0 {
		return x.BitLen()/8 + 1
	}
	m := new(big.Int).Neg(x)
	m.Sub(m, one)
	return m.BitLen()/8 + 1
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
