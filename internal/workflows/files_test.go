package workflows

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

func writeTestFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func relative(t *testing.T, base string, files []string) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(base, f)
		if err != nil {
			t.Fatalf("Failed to relativize %s: %v", f, err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolveFiles(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"a.wav",
		"b.WAV",
		"a.enc.wav",
		"notes.txt",
		"album/one.wav",
		"album/one.enc.wav",
		"album/deep/two.wav",
	} {
		writeTestFile(t, filepath.Join(dir, f))
	}

	tests := []struct {
		name          string
		patterns      []string
		forEncryption bool
		want          []string
	}{
		{"SingleFile", []string{"a.wav"}, true, []string{"a.wav"}},
		{"LiteralEncryptedForDecryption", []string{"a.enc.wav"}, false, []string{"a.enc.wav"}},
		{"LiteralPlainForDecryption", []string{"a.wav"}, false, []string{"a.wav"}},
		{"GlobForEncryption", []string{"*.wav"}, true, []string{"a.wav"}},
		{"GlobForDecryption", []string{"*.wav"}, false, []string{"a.enc.wav"}},
		{"DoubleStar", []string{"**/*.wav"}, true, []string{"a.wav", "album/deep/two.wav", "album/one.wav"}},
		{"Directory", []string{"album"}, true, []string{"album/deep/two.wav", "album/one.wav"}},
		{"DirectoryForDecryption", []string{"album"}, false, []string{"album/one.enc.wav"}},
		{"Deduplication", []string{"a.wav", "*.wav", "a.wav"}, true, []string{"a.wav"}},
		{"CaseInsensitiveExt", []string{"b.WAV"}, true, []string{"b.WAV"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := ResolveFiles(tt.patterns, dir, tt.forEncryption)
			if err != nil {
				t.Fatalf("ResolveFiles failed: %v", err)
			}
			got := relative(t, dir, files)
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if !equalStrings(got, want) {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestResolveFilesErrors(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "notes.txt"))

	tests := []struct {
		name     string
		patterns []string
		wantErr  error
	}{
		{"Empty", nil, kerrors.ErrNoFilesFound},
		{"Missing", []string{"missing.wav"}, kerrors.ErrFileNotFound},
		{"WrongType", []string{"notes.txt"}, kerrors.ErrInvalidFileType},
		{"NoGlobMatches", []string{"*.wav"}, kerrors.ErrNoFilesFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveFiles(tt.patterns, dir, true)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResolveFilesAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.wav")
	writeTestFile(t, path)

	files, err := ResolveFiles([]string{path}, "/somewhere/else", true)
	if err != nil {
		t.Fatalf("ResolveFiles failed: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("Expected [%s], got %v", path, files)
	}
}
