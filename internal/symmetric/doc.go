// Package symmetric provides the bulk cipher of the hybrid scheme.
//
// A fresh Material (32-byte key, 16-byte IV) is generated for every encrypt
// call and only ever leaves memory as the 48-byte key||iv block that the
// key manager wraps. Operations are whole-buffer and in memory.
//
// # Cipher Suites
//
//   - aes-256-cbc: AES-256 in CBC mode with PKCS#7 padding (default). This is
//     the layout existing encrypted files use.
//   - secretbox: NaCl secretbox (XSalsa20-Poly1305). The nonce is the IV
//     zero-extended to 24 bytes; each key is used exactly once.
package symmetric
