package utils

import (
	"os"
	"os/user"
	"regexp"
	"strings"
)

var (
	prefixInvalidChars = regexp.MustCompile(`[^a-z0-9\-_]`)
	prefixHyphenRuns   = regexp.MustCompile(`-+`)
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}
	return hostname, nil
}

// SanitizePrefix normalizes a key file prefix: lowercase, spaces become
// hyphens, and anything but letters, digits, hyphens and underscores is
// dropped. It returns an empty string when nothing usable remains.
func SanitizePrefix(prefix string) string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	prefix = strings.ReplaceAll(prefix, " ", "-")
	prefix = prefixInvalidChars.ReplaceAllString(prefix, "")
	prefix = prefixHyphenRuns.ReplaceAllString(prefix, "-")
	return strings.Trim(prefix, "-")
}
