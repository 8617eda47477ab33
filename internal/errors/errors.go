package errors

import "errors"

// Key errors indicate missing or unusable asymmetric key material.
var (
	// ErrKeyUnavailable indicates the required exponent or modulus has not been configured.
	ErrKeyUnavailable = errors.New("key is not available")

	// ErrMalformedKeyText indicates key text did not have three numeric comma-separated fields.
	ErrMalformedKeyText = errors.New("malformed key text")

	// ErrKeyDecryptFailed indicates the wrapped symmetric key could not be recovered.
	ErrKeyDecryptFailed = errors.New("failed to unwrap symmetric key")

	// ErrBlockTooLarge indicates a block does not fit in the configured wrapped key length.
	ErrBlockTooLarge = errors.New("block does not fit in key length")

	// ErrInvalidPassphrase indicates a sealed key could not be opened with the given passphrase.
	ErrInvalidPassphrase = errors.New("invalid passphrase for sealed key")

	// ErrUnknownKeyEncoding indicates the configured integer encoding is not supported.
	ErrUnknownKeyEncoding = errors.New("unknown key encoding")

	// ErrPassphraseRequired indicates an OpenSSH private key is passphrase-protected.
	ErrPassphraseRequired = errors.New("private key is passphrase-protected")

	// ErrUnsupportedKeyType indicates an OpenSSH key is not an RSA key.
	ErrUnsupportedKeyType = errors.New("unsupported key type")
)

// Generation errors indicate a bounded search gave up.
var (
	// ErrPrimeSearchExhausted indicates no prime was found within the attempt budget.
	ErrPrimeSearchExhausted = errors.New("prime search exhausted")

	// ErrExponentSearchExhausted indicates no public exponent coprime to phi was found.
	ErrExponentSearchExhausted = errors.New("public exponent search exhausted")

	// ErrPrimeBytesTooSmall indicates primes of the requested length cannot form a modulus that fits a wrapped key.
	ErrPrimeBytesTooSmall = errors.New("prime byte length too small")
)

// Container errors indicate issues with the audio container or its state.
var (
	// ErrInvalidState indicates the operation is not permitted from the container's current state.
	ErrInvalidState = errors.New("operation not permitted in current state")

	// ErrInvalidPayload indicates an encrypted payload is too short or otherwise unusable.
	ErrInvalidPayload = errors.New("invalid encrypted payload")

	// ErrTruncatedHeader indicates the input is shorter than a WAV header.
	ErrTruncatedHeader = errors.New("truncated wav header")

	// ErrNoContainer indicates no audio file has been loaded into the session.
	ErrNoContainer = errors.New("no audio file loaded")
)

// Cipher errors indicate symmetric encryption failures.
var (
	// ErrInvalidPadding indicates ciphertext padding or block alignment is invalid.
	ErrInvalidPadding = errors.New("invalid ciphertext padding")

	// ErrUnknownCipherSuite indicates the configured symmetric cipher suite is not supported.
	ErrUnknownCipherSuite = errors.New("unknown cipher suite")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrOutputExists indicates an output file already exists and overwriting was not requested.
	ErrOutputExists = errors.New("output file already exists")

	// ErrInvalidFileType indicates a file does not have the expected extension.
	ErrInvalidFileType = errors.New("invalid file type")
)

// Input errors indicate invalid command-line input.
var (
	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrOutputWithMultipleFiles indicates an explicit output path was given for more than one input.
	ErrOutputWithMultipleFiles = errors.New("output path requires exactly one input file")
)
