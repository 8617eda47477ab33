// Package workflows provides high-level orchestration for audiocrypt
// commands.
//
// Workflows coordinate the core packages (keys, engine, wav) with
// configuration, key persistence and the audit trail. Each workflow
// handles a single command's logic, independent of CLI concerns like flag
// parsing, spinners and output formatting.
//
// # Session
//
// Session is the narrow functional surface over one loaded container and
// one key store: load, encrypt, decrypt, save, and key import/export as
// text. All Session methods are serialized by an internal mutex.
//
// # Available Workflows
//
//   - EncryptFiles, DecryptFiles: batch transforms over files and globs
//   - Info: describes a WAV file
//   - GenerateKeys, ImportKey, ExportKey, ExportBothKeys, ShowKeys: key management
//   - BackupKeys: archives keys and configuration as tar.gz
//   - InitConfig, ShowConfig: configuration management
//   - Log: reads and filters the audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package so the
// CLI can choose messages without string matching:
//
//	result, err := workflows.EncryptFiles(ctx, opts)
//	if errors.Is(err, kerrors.ErrKeyUnavailable) {
//	    // Suggest generating or importing a public key
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first
// parameter. Key generation honors cancellation between prime candidates;
// batch workflows check it between files.
package workflows
