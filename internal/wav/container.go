package wav

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// State records the last operation successfully applied to a payload.
type State int

const (
	Empty State = iota
	Loaded
	Encrypted
	Decrypted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Encrypted:
		return "encrypted"
	case Decrypted:
		return "decrypted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Container is a WAV header, its payload and the payload state.
type Container struct {
	name    string
	header  Header
	payload []byte
	state   State
}

// Load parses data as a header followed by the payload. The returned
// container is in the Loaded state.
func Load(name string, data []byte) (*Container, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	payload := make([]byte, len(data)-HeaderSize)
	copy(payload, data[HeaderSize:])

	return &Container{
		name:    name,
		header:  h,
		payload: payload,
		state:   Loaded,
	}, nil
}

// LoadFile reads the file at path. A missing file returns ErrFileNotFound.
func LoadFile(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Load(filepath.Base(path), data)
}

// Name returns the base name the container was loaded from.
func (c *Container) Name() string { return c.name }

// Header returns a copy of the header.
func (c *Container) Header() Header { return c.header }

// State returns the payload state.
func (c *Container) State() State { return c.state }

// Payload returns a copy of the payload.
func (c *Container) Payload() []byte {
	out := make([]byte, len(c.payload))
	copy(out, c.payload)
	return out
}

// Len returns the payload length.
func (c *Container) Len() int { return len(c.payload) }

// Commit replaces the payload and state together. The container keeps
// payload; callers must not modify it afterwards.
func (c *Container) Commit(payload []byte, state State) {
	c.payload = payload
	c.state = state
}

// Bytes returns the header followed by the payload.
func (c *Container) Bytes() ([]byte, error) {
	h, err := c.header.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}
	return append(h, c.payload...), nil
}

// WriteTo writes the header followed by the payload to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	data, err := c.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// SaveFile writes the container to path, replacing any existing file.
func (c *Container) SaveFile(path string) error {
	data, err := c.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Duration returns the payload length in whole seconds, or false when the
// byte rate is zero.
func (c *Container) Duration() (int32, bool) {
	if c.header.ByteRate == 0 {
		return 0, false
	}
	return c.header.Subchunk2Size / c.header.ByteRate, true
}

// Describe returns a multi-line dump of the file name, duration and every
// header field.
func (c *Container) Describe() string {
	h := c.header
	var b strings.Builder

	fmt.Fprintf(&b, "File name: %s\n", c.name)
	if d, ok := c.Duration(); ok {
		fmt.Fprintf(&b, "Duration: %ds\n", d)
	} else {
		b.WriteString("Duration: unknown\n")
	}
	b.WriteString("\n---- METADATA ----\n")
	fmt.Fprintf(&b, "Chunk ID: %s\n", h.ChunkID[:])
	fmt.Fprintf(&b, "Chunk size: %d\n", h.ChunkSize)
	fmt.Fprintf(&b, "Format: %s\n", h.Format[:])
	fmt.Fprintf(&b, "Subchunk1 ID: %s\n", h.Subchunk1ID[:])
	fmt.Fprintf(&b, "Subchunk1 size: %d\n", h.Subchunk1Size)
	fmt.Fprintf(&b, "Audio format: %d\n", h.AudioFormat)
	fmt.Fprintf(&b, "Channels: %d\n", h.NumChannels)
	fmt.Fprintf(&b, "Sample rate: %d\n", h.SampleRate)
	fmt.Fprintf(&b, "Byte rate: %d\n", h.ByteRate)
	fmt.Fprintf(&b, "Block align: %d\n", h.BlockAlign)
	fmt.Fprintf(&b, "Bits per sample: %d\n", h.BitsPerSample)
	fmt.Fprintf(&b, "Subchunk2 ID: %s\n", h.Subchunk2ID[:])
	fmt.Fprintf(&b, "Subchunk2 size: %d\n", h.Subchunk2Size)

	return b.String()
}
