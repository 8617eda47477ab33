package workflows

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

const (
	wavExt       = ".wav"
	encryptedExt = ".enc.wav"
	decryptedExt = ".dec.wav"
)

// ResolveFiles takes user-provided paths, directories and globs relative to
// baseDir and returns matching WAV files without duplicates.
//
// Directories and globs select plain .wav files when forEncryption is true
// and .enc.wav files otherwise. A literal path only has to be a .wav file,
// so files encrypted under other names can still be decrypted.
func ResolveFiles(patterns []string, baseDir string, forEncryption bool) ([]string, error) {
	if len(patterns) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir, forEncryption)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, strings.Join(patterns, ", "))
	}

	return files, nil
}

func resolvePattern(pattern, baseDir string, forEncryption bool) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(absPattern, forEncryption)
	}

	if strings.ContainsAny(pattern, "*?[{") {
		return expandGlob(absPattern, pattern, forEncryption)
	}

	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
	}
	if !isWavFile(absPattern) {
		return nil, fmt.Errorf("%w: %s is not a .wav file", kerrors.ErrInvalidFileType, pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern, pattern string, forEncryption bool) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if wanted(m, forEncryption) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findFilesInDir(dir string, forEncryption bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if wanted(path, forEncryption) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func wanted(path string, forEncryption bool) bool {
	if forEncryption {
		return isWavFile(path) && !isEncryptedFile(path)
	}
	return isEncryptedFile(path)
}

func isWavFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), wavExt)
}

func isEncryptedFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), encryptedExt)
}
