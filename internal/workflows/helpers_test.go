package workflows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	"github.com/PolarWolf314/audiocrypt/internal/wav"
)

// setupSettings points every user path at a temporary directory and
// returns its root.
func setupSettings(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	original := *configs.UserAudiocryptSettings
	configs.UserAudiocryptSettings.KeysPath = filepath.Join(root, "data", "keys")
	configs.UserAudiocryptSettings.ConfigsPath = filepath.Join(root, "config")
	configs.UserAudiocryptSettings.DataPath = filepath.Join(root, "data")
	t.Cleanup(func() {
		*configs.UserAudiocryptSettings = original
	})

	return root
}

// wavBytes returns a PCM WAV file holding payload.
func wavBytes(t *testing.T, payload []byte) []byte {
	t.Helper()
	h, err := wav.NewPCMHeader(2, 44100, 16, len(payload)).MarshalBinary()
	if err != nil {
		t.Fatalf("Failed to encode header: %v", err)
	}
	return append(h, payload...)
}

// writeWAV writes a PCM WAV file holding payload to path.
func writeWAV(t *testing.T, path string, payload []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, wavBytes(t, payload), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
