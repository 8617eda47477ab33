package configs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/audiocrypt/internal/bigmath"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/symmetric"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if c.Keys.PrimeBytes != 32 {
		t.Errorf("Expected prime_bytes 32, got %d", c.Keys.PrimeBytes)
	}
	if c.Keys.PrimalityRounds != 100 {
		t.Errorf("Expected primality_rounds 100, got %d", c.Keys.PrimalityRounds)
	}
	if c.Keys.Encoding != bigmath.BigEndianName {
		t.Errorf("Expected encoding %q, got %q", bigmath.BigEndianName, c.Keys.Encoding)
	}
	if c.Cipher.Suite != symmetric.AESCBCSuite {
		t.Errorf("Expected suite %q, got %q", symmetric.AESCBCSuite, c.Cipher.Suite)
	}

	opts := c.GenerateOptions()
	if opts.MinModulusBytes != symmetric.MaterialSize+1 {
		t.Errorf("Expected MinModulusBytes %d, got %d", symmetric.MaterialSize+1, opts.MinModulusBytes)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *c != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", c)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[cipher]\nsuite = \"secretbox\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.Cipher.Suite != symmetric.SecretboxSuite {
		t.Errorf("Expected suite %q, got %q", symmetric.SecretboxSuite, c.Cipher.Suite)
	}
	if c.Keys.PrimeBytes != 32 {
		t.Errorf("Expected default prime_bytes 32, got %d", c.Keys.PrimeBytes)
	}

	cipher, err := c.SymmetricCipher()
	if err != nil {
		t.Fatalf("SymmetricCipher failed: %v", err)
	}
	if cipher.Name() != symmetric.SecretboxSuite {
		t.Errorf("Expected cipher %q, got %q", symmetric.SecretboxSuite, cipher.Name())
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"UnknownSuite", "[cipher]\nsuite = \"rot13\"\n", "cipher.suite"},
		{"UnknownEncoding", "[keys]\nencoding = \"middle-endian\"\n", "keys.encoding"},
		{"NegativePrimeBytes", "[keys]\nprime_bytes = -1\n", "keys.prime_bytes"},
		{"PrimeBytesBelowModulusFloor", "[keys]\nprime_bytes = 8\n", "49-byte modulus"},
		{"BadTOML", "[keys\n", "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCheckPrimeBytes(t *testing.T) {
	if MinPrimeBytes != 25 {
		t.Errorf("Expected MinPrimeBytes 25, got %d", MinPrimeBytes)
	}

	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, false},
		{1, true},
		{8, true},
		{MinPrimeBytes - 1, true},
		{MinPrimeBytes, false},
		{64, false},
	}
	for _, tt := range tests {
		err := CheckPrimeBytes(tt.n)
		if tt.wantErr && !errors.Is(err, kerrors.ErrPrimeBytesTooSmall) {
			t.Errorf("CheckPrimeBytes(%d): expected ErrPrimeBytesTooSmall, got %v", tt.n, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("CheckPrimeBytes(%d): expected nil, got %v", tt.n, err)
		}
	}
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	tempDir := t.TempDir()
	oldConfigsPath := UserAudiocryptSettings.ConfigsPath
	UserAudiocryptSettings.ConfigsPath = tempDir
	defer func() {
		UserAudiocryptSettings.ConfigsPath = oldConfigsPath
	}()

	if UserConfigExists() {
		t.Fatal("Expected no config before saving")
	}

	config := DefaultConfig()
	config.Keys.Encoding = bigmath.LegacyLittleEndianName
	config.Keys.PrimalityRounds = 40

	if err := SaveUserConfig(config); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}
	if !UserConfigExists() {
		t.Fatal("Expected config to exist after saving")
	}

	loaded, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", config, loaded)
	}

	codec, err := loaded.Codec()
	if err != nil {
		t.Fatalf("Codec failed: %v", err)
	}
	if codec.Name() != bigmath.LegacyLittleEndianName {
		t.Errorf("Expected codec %q, got %q", bigmath.LegacyLittleEndianName, codec.Name())
	}
}

func TestSaveUserConfigRejectsInvalid(t *testing.T) {
	tempDir := t.TempDir()
	oldConfigsPath := UserAudiocryptSettings.ConfigsPath
	UserAudiocryptSettings.ConfigsPath = tempDir
	defer func() {
		UserAudiocryptSettings.ConfigsPath = oldConfigsPath
	}()

	config := DefaultConfig()
	config.Cipher.Suite = "des"
	if err := SaveUserConfig(config); err == nil {
		t.Fatal("Expected error for invalid suite")
	}
	if UserConfigExists() {
		t.Error("Expected no file to be written for an invalid config")
	}
}

func TestUserSettingsPaths(t *testing.T) {
	s := &UserSettings{KeysPath: "/k", ConfigsPath: "/c", DataPath: "/d"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"PrivateKey", s.PrivateKeyPath(), filepath.Join("/k", "private.key")},
		{"PublicKey", s.PublicKeyPath(), filepath.Join("/k", "public.key")},
		{"Config", s.ConfigPath(), filepath.Join("/c", "config.toml")},
		{"AuditLog", s.AuditLogPath(), filepath.Join("/d", "audit.jsonl")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}
