// Package wav reads and writes the canonical 44-byte WAV header and the
// payload that follows it.
//
// A Container is loaded wholesale, mutated only through Commit, and written
// out wholesale. Header fields are extracted verbatim with no validation
// beyond length; they are written back byte-for-byte on save.
//
// Containers are not safe for concurrent use. Callers serialize access,
// typically with one owner per container.
package wav
