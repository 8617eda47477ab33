// Package configs manages audiocrypt's user paths and configuration.
//
// # Settings
//
// UserSettings is initialized at startup from the XDG base directories:
//
//   - KeysPath: $XDG_DATA_HOME/audiocrypt/keys, holds private.key and public.key
//   - DataPath: $XDG_DATA_HOME/audiocrypt, holds the audit log
//   - ConfigsPath: $XDG_CONFIG_HOME/audiocrypt, holds config.toml
//
// # Configuration
//
// config.toml selects key generation parameters, the integer encoding used
// for wrapped keys and the payload cipher suite:
//
//	[keys]
//	prime_bytes = 32
//	primality_rounds = 100
//	max_prime_attempts = 100000
//	encoding = "big-endian"
//
//	[cipher]
//	suite = "aes-256-cbc"
//
// A missing file yields DefaultConfig. Zero values in a present file fall
// back to the defaults.
package configs
