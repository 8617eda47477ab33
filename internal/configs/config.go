package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/audiocrypt/internal/bigmath"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/keys"
	"github.com/PolarWolf314/audiocrypt/internal/primes"
	"github.com/PolarWolf314/audiocrypt/internal/symmetric"
)

// MinPrimeBytes is the shortest prime length whose products can reach the
// minModulusBytes floor.
const MinPrimeBytes = (minModulusBytes + 1) / 2

// minModulusBytes is the smallest modulus that holds a key||iv block.
const minModulusBytes = symmetric.MaterialSize + 1

type Config struct {
	Keys   KeysConfig   `toml:"keys"`
	Cipher CipherConfig `toml:"cipher"`
}

type KeysConfig struct {
	PrimeBytes       int    `toml:"prime_bytes"`
	PrimalityRounds  int    `toml:"primality_rounds"`
	MaxPrimeAttempts int    `toml:"max_prime_attempts"`
	Encoding         string `toml:"encoding"`
}

type CipherConfig struct {
	Suite string `toml:"suite"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Keys: KeysConfig{
			PrimeBytes:       keys.DefaultPrimeByteLength,
			PrimalityRounds:  primes.DefaultRounds,
			MaxPrimeAttempts: primes.DefaultMaxAttempts,
			Encoding:         bigmath.BigEndianName,
		},
		Cipher: CipherConfig{
			Suite: symmetric.AESCBCSuite,
		},
	}
}

// applyDefaults fills zero fields from DefaultConfig.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Keys.PrimeBytes == 0 {
		c.Keys.PrimeBytes = d.Keys.PrimeBytes
	}
	if c.Keys.PrimalityRounds == 0 {
		c.Keys.PrimalityRounds = d.Keys.PrimalityRounds
	}
	if c.Keys.MaxPrimeAttempts == 0 {
		c.Keys.MaxPrimeAttempts = d.Keys.MaxPrimeAttempts
	}
	if c.Keys.Encoding == "" {
		c.Keys.Encoding = d.Keys.Encoding
	}
	if c.Cipher.Suite == "" {
		c.Cipher.Suite = d.Cipher.Suite
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Keys.PrimeBytes < 0 {
		return fmt.Errorf("keys.prime_bytes must be positive, got %d", c.Keys.PrimeBytes)
	}
	if err := CheckPrimeBytes(c.Keys.PrimeBytes); err != nil {
		return fmt.Errorf("keys.prime_bytes: %w", err)
	}
	if c.Keys.PrimalityRounds < 0 {
		return fmt.Errorf("keys.primality_rounds must be positive, got %d", c.Keys.PrimalityRounds)
	}
	if c.Keys.MaxPrimeAttempts < 0 {
		return fmt.Errorf("keys.max_prime_attempts must be positive, got %d", c.Keys.MaxPrimeAttempts)
	}
	if _, err := bigmath.CodecByName(c.Keys.Encoding); err != nil {
		return fmt.Errorf("keys.encoding: %w", err)
	}
	if _, err := symmetric.ForSuite(c.Cipher.Suite); err != nil {
		return fmt.Errorf("cipher.suite: %w", err)
	}
	return nil
}

// Codec returns the configured key encoding.
func (c *Config) Codec() (bigmath.Codec, error) {
	return bigmath.CodecByName(c.Keys.Encoding)
}

// SymmetricCipher returns the configured payload cipher.
func (c *Config) SymmetricCipher() (symmetric.Cipher, error) {
	return symmetric.ForSuite(c.Cipher.Suite)
}

// GenerateOptions returns key generation options for the configured
// parameters. MinModulusBytes is set so a wrapped key always fits.
func (c *Config) GenerateOptions() keys.GenerateOptions {
	return keys.GenerateOptions{
		PrimeByteLength: c.Keys.PrimeBytes,
		Rounds:          c.Keys.PrimalityRounds,
		MaxAttempts:     c.Keys.MaxPrimeAttempts,
		MinModulusBytes: minModulusBytes,
	}
}

// CheckPrimeBytes rejects a non-zero prime length below MinPrimeBytes.
// Zero means the default and is accepted.
func CheckPrimeBytes(n int) error {
	if n != 0 && n < MinPrimeBytes {
		return fmt.Errorf("%w: %d bytes per prime cannot reach the %d-byte modulus a wrapped key needs (minimum %d)",
			kerrors.ErrPrimeBytesTooSmall, n, minModulusBytes, MinPrimeBytes)
	}
	return nil
}

// LoadConfig loads config.toml from path. A missing file returns the
// defaults.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	if err := LoadTOML(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", path, err)
	}
	return config, nil
}

// LoadUserConfig loads the user's config.toml.
func LoadUserConfig() (*Config, error) {
	return LoadConfig(UserAudiocryptSettings.ConfigPath())
}

// SaveUserConfig writes config to the user's config.toml.
func SaveUserConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(UserAudiocryptSettings.ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// UserConfigExists reports whether the user's config.toml exists.
func UserConfigExists() bool {
	_, err := os.Stat(UserAudiocryptSettings.ConfigPath())
	return err == nil
}
