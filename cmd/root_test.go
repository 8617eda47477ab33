package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	setupTestEnvironment(t)

	output := mustRunCLI(t)
	for _, want := range []string{"Usage:", "encrypt", "decrypt", "keys", "config", "log"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected help to mention %q, got: %s", want, output)
		}
	}
}

func TestVerboseFlag(t *testing.T) {
	setupTestEnvironment(t)

	output := mustRunCLI(t, "keys", "show", "--verbose")
	if !strings.Contains(output, "[info] Starting keys show command") {
		t.Errorf("Expected info log, got: %s", output)
	}

	output = mustRunCLI(t, "keys", "show")
	if strings.Contains(output, "[info]") {
		t.Errorf("Expected no info log without --verbose, got: %s", output)
	}
}

func TestInfoCommand(t *testing.T) {
	dir := setupTestEnvironment(t)
	writeWAV(t, filepath.Join(dir, "song.wav"), make([]byte, 176400))

	output := mustRunCLI(t, "info", "song.wav")
	for _, want := range []string{"File name: song.wav", "Duration: 1s", "Sample rate: 44100", "Payload: 176400 bytes"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}

	output = mustRunCLI(t, "info", "missing.wav")
	if !strings.Contains(output, "File not found") {
		t.Errorf("Expected not found message, got: %s", output)
	}
}

func TestLogCommand(t *testing.T) {
	dir := setupTestEnvironment(t)

	output := mustRunCLI(t, "log")
	if !strings.Contains(output, "No audit log found") {
		t.Errorf("Expected no log message, got: %s", output)
	}

	writeWAV(t, filepath.Join(dir, "song.wav"), []byte("pcm"))
	mustRunCLI(t, "keys", "generate")
	mustRunCLI(t, "encrypt", "song.wav")

	output = mustRunCLI(t, "log", "--oneline")
	if !strings.Contains(output, "keygen") || !strings.Contains(output, "encrypt") {
		t.Errorf("Expected keygen and encrypt entries, got: %s", output)
	}

	output = mustRunCLI(t, "log", "--operation", "encrypt")
	if strings.Contains(output, "keygen") || !strings.Contains(output, "song.enc.wav") {
		t.Errorf("Expected only the encrypt entry, got: %s", output)
	}

	output = mustRunCLI(t, "log", "--operation", "import")
	if !strings.Contains(output, "No audit log entries found matching the filters.") {
		t.Errorf("Expected empty filter message, got: %s", output)
	}

	output = mustRunCLI(t, "log", "--since", "yesterday")
	if !strings.Contains(output, "date format invalid") {
		t.Errorf("Expected date format message, got: %s", output)
	}
}
