package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/audiocrypt/internal/audit"
	"github.com/PolarWolf314/audiocrypt/internal/configs"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/keys"
	logger "github.com/PolarWolf314/audiocrypt/internal/logging"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// FilePatterns lists files, directories or globs to decrypt.
	FilePatterns []string

	// BaseDir resolves relative patterns. Empty means the working directory.
	BaseDir string

	// OutputPath overrides the output file. Only valid with one input.
	// Empty strips .enc from <name>.enc.wav, or writes <name>.dec.wav.
	OutputPath string

	// Force overwrites existing output files.
	Force bool

	// DryRun previews which files would be decrypted without making changes.
	DryRun bool

	Logger logger.Logger
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// SourceFiles lists the input files.
	SourceFiles []string

	// DecryptedFiles lists the written files, index-aligned with SourceFiles.
	DecryptedFiles []string

	// Suite is the payload cipher suite used.
	Suite string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// DecryptFiles decrypts each matched WAV file with the persisted private key.
//
// Returns ErrNoFilesFound if no files match the patterns.
// Returns ErrKeyUnavailable if no private key has been generated or imported.
// Returns ErrKeyDecryptFailed, ErrInvalidPadding or ErrInvalidPayload if a
// file was not encrypted for this key pair.
func DecryptFiles(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	files, outputs, err := planOutputs(opts.FilePatterns, opts.BaseDir, opts.OutputPath, opts.Force, false)
	if err != nil {
		return nil, err
	}

	env, err := loadEnvironment()
	if err != nil {
		return nil, err
	}
	if !env.store.Has(keys.Private) {
		return nil, fmt.Errorf("%w: no private key in %s", kerrors.ErrKeyUnavailable, configs.UserAudiocryptSettings.KeysPath)
	}

	result := &DecryptResult{
		SourceFiles:    files,
		DecryptedFiles: outputs,
		Suite:          env.cipher.Name(),
		DryRun:         opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	session := env.session()
	done, err := runBatch(ctx, files, func(i int, file string) error {
		opts.Logger.Debugf("Decrypting %s -> %s", file, outputs[i])

		if err := session.LoadFile(file); err != nil {
			return err
		}
		if err := session.Decrypt(ctx); err != nil {
			return fmt.Errorf("decrypting %s: %w", file, err)
		}
		return session.SaveFile(outputs[i])
	})
	logBatch(audit.OpDecrypt, outputs[:done], result.Suite)
	if err != nil {
		return nil, err
	}

	return result, nil
}
