package keys

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

const utf8BOM = "\uFEFF"

// WriteKey writes the kind half of the current pair as key text.
func (s *Store) WriteKey(w io.Writer, kind Kind) error {
	_, err := io.WriteString(w, s.Serialize(kind))
	return err
}

// ReadKey reads key text from r into the kind slot. A leading UTF-8 byte
// order mark and surrounding whitespace are ignored.
func (s *Store) ReadKey(r io.Reader, kind Kind) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read %s key: %w", kind, err)
	}
	return s.Deserialize(kind, CleanKeyText(string(data)))
}

// CleanKeyText strips a UTF-8 byte order mark and surrounding whitespace.
func CleanKeyText(text string) string {
	return strings.TrimSpace(strings.TrimPrefix(text, utf8BOM))
}

// WriteKeyFile writes the kind half of the current pair to path with owner
// only permissions, creating parent directories as needed.
func (s *Store) WriteKeyFile(path string, kind Kind) error {
	return writeTextFile(path, s.Serialize(kind))
}

// ReadKeyFile loads key text from path into the kind slot.
func (s *Store) ReadKeyFile(path string, kind Kind) error {
	text, err := ReadKeyText(path)
	if err != nil {
		return err
	}
	return s.Deserialize(kind, text)
}

// WriteKeyFiles writes both halves of the current pair.
func (s *Store) WriteKeyFiles(privatePath, publicPath string) error {
	if err := s.WriteKeyFile(privatePath, Private); err != nil {
		return err
	}
	return s.WriteKeyFile(publicPath, Public)
}

// ReadKeyText returns the cleaned contents of a key file.
func ReadKeyText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
		}
		return "", fmt.Errorf("failed to read key file at %s: %w", path, err)
	}
	return CleanKeyText(string(data)), nil
}

// WriteKeyText writes text to path with owner only permissions.
func WriteKeyText(path, text string) error {
	return writeTextFile(path, text)
}

func writeTextFile(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory for key at %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write key file at %s: %w", path, err)
	}
	return nil
}

// KeyFileNames returns the file names used when exporting both keys for an
// audio file: "<prefix>-private_key-<name>.txt" and
// "<prefix>-public_key-<name>.txt", where name is the audio file name
// without its .wav extension.
func KeyFileNames(prefix, wavName string) (privateName, publicName string) {
	common := strings.TrimSuffix(filepath.Base(wavName), ".wav") + ".txt"
	return prefix + "-private_key-" + common, prefix + "-public_key-" + common
}
