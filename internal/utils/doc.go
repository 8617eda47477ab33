// Package utils provides shared helpers for audiocrypt commands and
// workflows.
//
// # Filesystem Utilities
//
//   - FileExists: reports whether a regular file exists
//   - ReplaceExt: swaps a file extension, keeping the directory
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//   - SanitizePrefix: normalizes a key file prefix for safe storage
//
// # I/O Utilities
//
//   - ReadStdin: reads all data from standard input
//
// # Terminal Utilities
//
//   - ReadPassphrase, ReadPassphraseFromTTY: hidden passphrase prompts
//   - IsTerminal: checks whether stdin is a terminal
package utils
