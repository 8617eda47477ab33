package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/audiocrypt/internal/audit"
	"github.com/PolarWolf314/audiocrypt/internal/configs"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/keys"
	logger "github.com/PolarWolf314/audiocrypt/internal/logging"
	"github.com/PolarWolf314/audiocrypt/internal/utils"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// FilePatterns lists files, directories or globs to encrypt.
	FilePatterns []string

	// BaseDir resolves relative patterns. Empty means the working directory.
	BaseDir string

	// OutputPath overrides the output file. Only valid with one input.
	// Empty means <name>.enc.wav next to the input.
	OutputPath string

	// Force overwrites existing output files.
	Force bool

	// DryRun previews which files would be encrypted without making changes.
	DryRun bool

	Logger logger.Logger
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// SourceFiles lists the input files.
	SourceFiles []string

	// EncryptedFiles lists the written files, index-aligned with SourceFiles.
	EncryptedFiles []string

	// Suite is the payload cipher suite used.
	Suite string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// EncryptFiles encrypts each matched WAV file with the persisted public key.
//
// Returns ErrNoFilesFound if no files match the patterns.
// Returns ErrKeyUnavailable if no public key has been generated or imported.
// Returns ErrOutputExists if an output file exists and Force is not set.
//
// Files are processed in order and the first failure stops the batch.
// Outputs written before the failure stay on disk and are audited.
func EncryptFiles(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	files, outputs, err := planOutputs(opts.FilePatterns, opts.BaseDir, opts.OutputPath, opts.Force, true)
	if err != nil {
		return nil, err
	}

	env, err := loadEnvironment()
	if err != nil {
		return nil, err
	}
	if !env.store.Has(keys.Public) {
		return nil, fmt.Errorf("%w: no public key in %s", kerrors.ErrKeyUnavailable, configs.UserAudiocryptSettings.KeysPath)
	}

	result := &EncryptResult{
		SourceFiles:    files,
		EncryptedFiles: outputs,
		Suite:          env.cipher.Name(),
		DryRun:         opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	session := env.session()
	done, err := runBatch(ctx, files, func(i int, file string) error {
		opts.Logger.Debugf("Encrypting %s -> %s", file, outputs[i])

		if err := session.LoadFile(file); err != nil {
			return err
		}
		if err := session.Encrypt(ctx); err != nil {
			return fmt.Errorf("encrypting %s: %w", file, err)
		}
		return session.SaveFile(outputs[i])
	})
	logBatch(audit.OpEncrypt, outputs[:done], result.Suite)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// runBatch calls process for each file in order and stops at the first
// error. It returns how many files were processed successfully.
func runBatch(ctx context.Context, files []string, process func(i int, file string) error) (int, error) {
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := process(i, file); err != nil {
			return i, err
		}
	}
	return len(files), nil
}

// logBatch records the outputs a batch actually wrote. A batch that wrote
// nothing leaves no entry.
func logBatch(op string, outputs []string, suite string) {
	if len(outputs) == 0 {
		return
	}
	entry := audit.NewEntry(op)
	entry.Files = outputs
	entry.Suite = suite
	audit.Log(entry)
}

// planOutputs resolves the input files and their output paths.
func planOutputs(patterns []string, baseDir, outputPath string, force, forEncryption bool) ([]string, []string, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	files, err := ResolveFiles(patterns, baseDir, forEncryption)
	if err != nil {
		return nil, nil, err
	}
	if outputPath != "" && len(files) > 1 {
		return nil, nil, fmt.Errorf("%w: %d files matched", kerrors.ErrOutputWithMultipleFiles, len(files))
	}

	outputs := make([]string, len(files))
	for i, f := range files {
		switch {
		case outputPath != "":
			outputs[i] = outputPath
		case forEncryption:
			outputs[i] = utils.ReplaceExt(f, wavExt, encryptedExt)
		case isEncryptedFile(f):
			outputs[i] = utils.ReplaceExt(f, encryptedExt, wavExt)
		default:
			outputs[i] = utils.ReplaceExt(f, wavExt, decryptedExt)
		}

		if !force && utils.FileExists(outputs[i]) {
			return nil, nil, fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrOutputExists, outputs[i])
		}
	}

	return files, outputs, nil
}
