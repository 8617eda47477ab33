package workflows

import (
	"context"

	"github.com/PolarWolf314/audiocrypt/internal/wav"
)

// InfoResult describes a WAV file.
type InfoResult struct {
	Path        string
	Header      wav.Header
	PayloadSize int
	Description string
}

// Info loads the file at path and describes its header.
//
// Returns ErrFileNotFound if the file does not exist.
// Returns ErrTruncatedHeader if the file is shorter than a WAV header.
func Info(ctx context.Context, path string) (*InfoResult, error) {
	c, err := wav.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &InfoResult{
		Path:        path,
		Header:      c.Header(),
		PayloadSize: c.Len(),
		Description: c.Describe(),
	}, nil
}
