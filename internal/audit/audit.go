package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	"github.com/PolarWolf314/audiocrypt/internal/utils"
)

// Operation names.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
	OpKeygen  = "keygen"
	OpImport  = "import"
	OpExport  = "export"
)

// TimestampFormat is RFC3339 in UTC with microseconds.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`
	User      string `json:"user,omitempty"`
	Host      string `json:"host,omitempty"`
	Operation string `json:"op"`

	Files      []string `json:"files,omitempty"`       // For encrypt/decrypt.
	KeyKind    string   `json:"key_kind,omitempty"`    // For import/export.
	Suite      string   `json:"suite,omitempty"`       // For encrypt/decrypt.
	Encoding   string   `json:"encoding,omitempty"`    // For keygen.
	OutputPath string   `json:"output_path,omitempty"` // For export.
	Sealed     bool     `json:"sealed,omitempty"`      // For export/import.
}

// NewEntry returns an entry for op with the current user and host filled
// in when they can be determined.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op}
	if user, err := utils.GetUsername(); err == nil {
		entry.User = user
	}
	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}
	return entry
}

// Log appends an entry to the audit log. Failures are ignored.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file, or an empty string when
// no data directory is configured.
func LogPath() string {
	if configs.UserAudiocryptSettings == nil || configs.UserAudiocryptSettings.DataPath == "" {
		return ""
	}
	return configs.UserAudiocryptSettings.AuditLogPath()
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Last returns the final n entries, or all of them when n <= 0.
func Last(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
