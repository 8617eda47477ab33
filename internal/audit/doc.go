// Package audit records audiocrypt operations in a local audit trail.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	$XDG_DATA_HOME/audiocrypt/audit.jsonl
//
// Each entry contains a UUID, a UTC timestamp with microseconds, the
// system user and host, the operation name and operation-specific
// details (files, key kind, cipher suite, output path).
//
// # Usage
//
//	entry := audit.NewEntry(audit.OpEncrypt)
//	entry.Files = encryptedFiles
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. Operations never fail because the audit
// log could not be written.
//
// # Reading Logs
//
// ReadEntries parses the audit log. Malformed lines are skipped to
// tolerate partial writes.
package audit
