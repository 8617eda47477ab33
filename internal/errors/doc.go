// Package errors provides typed error values for audiocrypt.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Key errors: missing or malformed key material (ErrKeyUnavailable, ErrMalformedKeyText)
//   - Generation errors: bounded searches that gave up (ErrPrimeSearchExhausted)
//   - Container errors: state and payload issues (ErrInvalidState, ErrInvalidPayload)
//   - Cipher errors: symmetric failures (ErrInvalidPadding)
//   - File errors: file system issues (ErrFileNotFound, ErrNoFilesFound, ErrOutputExists)
//   - Input errors: invalid command-line input (ErrInvalidDateFormat)
//
// All of these are recoverable. ErrKeyUnavailable in particular is an
// expected outcome whenever a key has not been imported or generated yet.
//
// # Usage
//
// Return errors from internal packages:
//
//	if pair.PublicExponent.Sign() == 0 {
//	    return nil, errors.ErrKeyUnavailable
//	}
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrKeyUnavailable) {
//	    // Suggest importing a public key
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: expected 3 fields, got %d", errors.ErrMalformedKeyText, n)
package errors
