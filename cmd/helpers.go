package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

func successLine(msg string) string {
	return ui.Success.Sprint("✓") + " " + msg
}

func errorLine(msg string) string {
	return ui.Error.Sprint("✗") + " " + msg
}

func hintLine(msg string) string {
	return ui.Info.Sprint("→") + " " + msg
}

// formatError turns a workflow error into the message shown to the user.
func formatError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrKeyUnavailable):
		return errorLine("Key not set: "+err.Error()) + "\n" +
			hintLine("Run "+ui.Code.Sprint("audiocrypt keys generate")+" or "+ui.Code.Sprint("audiocrypt keys import")+" first")

	case errors.Is(err, kerrors.ErrNoFilesFound):
		return errorLine("No WAV files found: " + err.Error())

	case errors.Is(err, kerrors.ErrFileNotFound):
		return errorLine("File not found: " + err.Error())

	case errors.Is(err, kerrors.ErrInvalidFileType):
		return errorLine(err.Error()) + "\n" +
			hintLine("Only "+ui.Path.Sprint(".wav")+" files can be processed")

	case errors.Is(err, kerrors.ErrOutputExists):
		return errorLine("Output already exists: "+err.Error()) + "\n" +
			hintLine("Use "+ui.Flag.Sprint("--force")+" to overwrite")

	case errors.Is(err, kerrors.ErrOutputWithMultipleFiles):
		return errorLine(ui.Flag.Sprint("--output") + " can only be used with a single input file: " + err.Error())

	case errors.Is(err, kerrors.ErrTruncatedHeader):
		return errorLine("Not a WAV file: " + err.Error())

	case errors.Is(err, kerrors.ErrKeyDecryptFailed),
		errors.Is(err, kerrors.ErrInvalidPadding),
		errors.Is(err, kerrors.ErrInvalidPayload):
		return errorLine("Decryption failed: "+err.Error()) + "\n" +
			hintLine("Was the file encrypted with your current key pair?")

	case errors.Is(err, kerrors.ErrMalformedKeyText):
		return errorLine("Invalid key text: "+err.Error()) + "\n" +
			hintLine("Keys are three comma-separated decimal numbers: exponent,modulus,length")

	case errors.Is(err, kerrors.ErrInvalidPassphrase):
		return errorLine("Could not open sealed key: " + err.Error())

	case errors.Is(err, kerrors.ErrPassphraseRequired):
		return errorLine("The key is passphrase-protected") + "\n" +
			hintLine("Set "+ui.Code.Sprint("$"+passphraseEnv)+" or run from a terminal to be prompted")

	case errors.Is(err, kerrors.ErrUnsupportedKeyType):
		return errorLine("Only RSA keys can be imported: " + err.Error())

	case errors.Is(err, kerrors.ErrPrimeSearchExhausted),
		errors.Is(err, kerrors.ErrExponentSearchExhausted):
		return errorLine("Key generation failed: "+err.Error()) + "\n" +
			hintLine("Try again or raise "+ui.Code.Sprint("keys.max_prime_attempts")+" in the config")

	case errors.Is(err, kerrors.ErrPrimeBytesTooSmall):
		return errorLine(err.Error()) + "\n" +
			hintLine("Use "+ui.Flag.Sprint(fmt.Sprintf("--prime-bytes %d", configs.MinPrimeBytes))+" or larger")

	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return errorLine(err.Error())

	default:
		return errorLine(err.Error())
	}
}

// isUserError reports whether err is an expected failure that is reported
// through the final message with a zero exit code.
func isUserError(err error) bool {
	for _, target := range []error{
		kerrors.ErrKeyUnavailable,
		kerrors.ErrNoFilesFound,
		kerrors.ErrFileNotFound,
		kerrors.ErrInvalidFileType,
		kerrors.ErrOutputExists,
		kerrors.ErrOutputWithMultipleFiles,
		kerrors.ErrTruncatedHeader,
		kerrors.ErrMalformedKeyText,
		kerrors.ErrInvalidPassphrase,
		kerrors.ErrPassphraseRequired,
		kerrors.ErrUnsupportedKeyType,
		kerrors.ErrInvalidDateFormat,
		kerrors.ErrPrimeBytesTooSmall,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
