package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	KeysPath    string
	ConfigsPath string
	DataPath    string
}

var UserAudiocryptSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserAudiocryptSettings = &UserSettings{
		KeysPath:    filepath.Join(dataDir, "audiocrypt", "keys"),
		ConfigsPath: filepath.Join(configDir, "audiocrypt"),
		DataPath:    filepath.Join(dataDir, "audiocrypt"),
	}
}

// PrivateKeyPath returns the path of the persisted private key.
func (s *UserSettings) PrivateKeyPath() string {
	return filepath.Join(s.KeysPath, "private.key")
}

// PublicKeyPath returns the path of the persisted public key.
func (s *UserSettings) PublicKeyPath() string {
	return filepath.Join(s.KeysPath, "public.key")
}

// ConfigPath returns the path of config.toml.
func (s *UserSettings) ConfigPath() string {
	return filepath.Join(s.ConfigsPath, "config.toml")
}

// AuditLogPath returns the path of the audit log.
func (s *UserSettings) AuditLogPath() string {
	return filepath.Join(s.DataPath, "audit.jsonl")
}
