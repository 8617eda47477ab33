package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReplaceExt replaces the extension of path with ext. Both ".wav" and
// ".enc.wav" style extensions are accepted for oldExt.
func ReplaceExt(path, oldExt, ext string) string {
	dir, base := filepath.Split(path)
	if strings.HasSuffix(strings.ToLower(base), strings.ToLower(oldExt)) {
		base = base[:len(base)-len(oldExt)]
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return dir + base + ext
}
