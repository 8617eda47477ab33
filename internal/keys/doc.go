// Package keys manages the textbook RSA key pair that wraps symmetric key
// material.
//
// # Key Store
//
// A Store is an explicit, caller-owned holder for the current key pair.
// It replaces process-wide key state: each engine or test gets its own
// store. A Store is safe for concurrent use; Generate computes a complete
// pair before swapping it in, so readers never observe a half-generated key.
//
// # Key Generation
//
// Generate draws two distinct random primes of the requested byte length,
// computes n = p1*p2 and phi = (p1-1)(p2-1), picks a random two-digit public
// exponent e coprime to phi and derives d = e^-1 mod phi. The primes and phi
// are discarded.
//
// # Text Format
//
// Keys are exchanged as three comma-separated decimal integers:
//
//	<exponent>,<modulus>,<wrapped key byte length>
//
// The exponent is d for a private key and e for a public key. Nothing in the
// text says which; the caller decides by importing with the right Kind.
//
// # Block Operations
//
// EncryptBlock and DecryptBlock are unpadded RSA over a single block. They
// return ErrKeyUnavailable when the needed exponent or modulus has not been
// set, which is an expected condition rather than a fault.
//
// # Sealed Keys
//
// Seal protects key text with a passphrase (argon2id + NaCl secretbox) for
// storing private keys at rest.
package keys
