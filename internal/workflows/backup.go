package workflows

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PolarWolf314/audiocrypt/internal/configs"
	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
	"github.com/PolarWolf314/audiocrypt/internal/utils"
)

// BackupOptions configures the key backup workflow.
type BackupOptions struct {
	// OutputPath is the path for the archive.
	// If empty, defaults to audiocrypt-keys-YYYY-MM-DD.tar.gz.
	OutputPath string

	// Force overwrites an existing archive.
	Force bool
}

// BackupResult contains the outcome of a backup.
type BackupResult struct {
	// Files maps archive names to the source paths included.
	Files map[string]string

	OutputPath string
}

// BackupKeys archives the persisted keys and config.toml as tar.gz.
//
// The private key is included as stored; seal it with
// `keys export --seal` first if the archive leaves the machine.
//
// Returns ErrNoFilesFound if there is nothing to archive.
// Returns ErrOutputExists if the archive exists and Force is not set.
func BackupKeys(ctx context.Context, opts BackupOptions) (*BackupResult, error) {
	settings := configs.UserAudiocryptSettings

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("audiocrypt-keys-%s.tar.gz", time.Now().Format("2006-01-02"))
	}
	if !opts.Force && utils.FileExists(outputPath) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrOutputExists, outputPath)
	}

	candidates := []struct{ name, path string }{
		{"keys/private.key", settings.PrivateKeyPath()},
		{"keys/public.key", settings.PublicKeyPath()},
		{"config.toml", settings.ConfigPath()},
	}

	files := make(map[string]string)
	var ordered []string
	for _, c := range candidates {
		if utils.FileExists(c.path) {
			files[c.name] = c.path
			ordered = append(ordered, c.name)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no keys or config to back up", kerrors.ErrNoFilesFound)
	}

	if err := createTarGzArchive(outputPath, ordered, files); err != nil {
		return nil, err
	}

	return &BackupResult{Files: files, OutputPath: outputPath}, nil
}

// createTarGzArchive writes files to a gzip-compressed tar archive in the
// order given by names.
func createTarGzArchive(outputPath string, names []string, files map[string]string) error {
	outFile, err := os.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	gzWriter := gzip.NewWriter(outFile)
	tarWriter := tar.NewWriter(gzWriter)

	for _, name := range names {
		if err := addFileToTar(tarWriter, name, files[name]); err != nil {
			return fmt.Errorf("adding file %s to archive: %w", files[name], err)
		}
	}

	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	return nil
}

// addFileToTar adds a single file to the archive under name.
func addFileToTar(tw *tar.Writer, name, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("creating tar header: %w", err)
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("writing tar header: %w", err)
	}

	if _, err := io.Copy(tw, file); err != nil {
		return fmt.Errorf("writing file contents: %w", err)
	}

	return nil
}
