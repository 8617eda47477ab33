package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	"github.com/PolarWolf314/audiocrypt/internal/wav"
	"github.com/fatih/color"
)

// setupTestEnvironment changes into a temporary working directory and points
// the user settings at a temporary data directory. It returns the working
// directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	tempUserDir := t.TempDir()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	originalSettings := *configs.UserAudiocryptSettings
	originalNoColor := color.NoColor

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		*configs.UserAudiocryptSettings = originalSettings
		color.NoColor = originalNoColor
		ResetGlobalState()
	})

	configs.UserAudiocryptSettings.KeysPath = filepath.Join(tempUserDir, "data", "keys")
	configs.UserAudiocryptSettings.ConfigsPath = filepath.Join(tempUserDir, "config")
	configs.UserAudiocryptSettings.DataPath = filepath.Join(tempUserDir, "data")
	color.NoColor = true

	return tempDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	RootCmd.SetArgs(args)
	return captureOutput(RootCmd.Execute)
}

// mustRunCLI is runCLI that fails the test on a returned error.
func mustRunCLI(t *testing.T, args ...string) string {
	t.Helper()
	output, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("audiocrypt %v failed: %v\nOutput: %s", args, err, output)
	}
	return output
}

// writeWAV writes a 16-bit stereo 44.1kHz WAV file holding payload.
func writeWAV(t *testing.T, path string, payload []byte) []byte {
	t.Helper()
	header, err := wav.NewPCMHeader(2, 44100, 16, len(payload)).MarshalBinary()
	if err != nil {
		t.Fatalf("Failed to encode header: %v", err)
	}
	data := append(header, payload...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return data
}
