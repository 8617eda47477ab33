// Package bigmath provides the arbitrary-precision arithmetic behind the
// textbook RSA key manager.
//
// It covers modular exponentiation, greatest common divisor, modular
// inverse and random sampling. All functions are pure apart from reading
// from the supplied random source; callers must never pass a zero or
// negative modulus.
//
// # Integer Codecs
//
// A Codec maps between byte buffers and integers. Two layouts exist:
//
//   - BigEndian: unsigned big-endian, the Go-native layout (default)
//   - LegacyLittleEndian: little-endian two's complement, as written by
//     the original desktop tool
//
// The codec decides both how a block is read as an integer and how many
// bytes the modulus occupies, which in turn fixes the wrapped key length.
package bigmath
