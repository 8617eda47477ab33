package wav

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

func testWAV(t *testing.T, payload []byte) []byte {
	t.Helper()
	h, err := NewPCMHeader(2, 44100, 16, len(payload)).MarshalBinary()
	if err != nil {
		t.Fatalf("Failed to encode header: %v", err)
	}
	return append(h, payload...)
}

func TestHeaderLayout(t *testing.T) {
	h := NewPCMHeader(2, 44100, 16, 1000)
	data, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if len(data) != HeaderSize {
		t.Fatalf("Expected %d header bytes, got %d", HeaderSize, len(data))
	}

	tests := []struct {
		name   string
		offset int
		want   []byte
	}{
		{"ChunkID", 0, []byte("RIFF")},
		{"ChunkSize", 4, []byte{0x0c, 0x04, 0x00, 0x00}},
		{"Format", 8, []byte("WAVE")},
		{"Subchunk1ID", 12, []byte("fmt ")},
		{"NumChannels", 22, []byte{0x02, 0x00}},
		{"SampleRate", 24, []byte{0x44, 0xac, 0x00, 0x00}},
		{"Subchunk2ID", 36, []byte("data")},
		{"Subchunk2Size", 40, []byte{0xe8, 0x03, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data[tt.offset : tt.offset+len(tt.want)]
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Expected %x at offset %d, got %x", tt.want, tt.offset, got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	c, err := Load("song.wav", testWAV(t, payload))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.State() != Loaded {
		t.Errorf("Expected state %s, got %s", Loaded, c.State())
	}
	if c.Name() != "song.wav" {
		t.Errorf("Expected name %q, got %q", "song.wav", c.Name())
	}
	if !bytes.Equal(c.Payload(), payload) {
		t.Errorf("Expected payload %x, got %x", payload, c.Payload())
	}
	if h := c.Header(); h.SampleRate != 44100 || h.NumChannels != 2 || h.BitsPerSample != 16 {
		t.Errorf("Unexpected header fields: %+v", h)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	c, err := Load("empty.wav", testWAV(t, nil))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty payload, got %d bytes", c.Len())
	}
}

func TestLoadTruncated(t *testing.T) {
	for _, n := range []int{0, 1, 43} {
		if _, err := Load("short.wav", make([]byte, n)); !errors.Is(err, kerrors.ErrTruncatedHeader) {
			t.Errorf("Expected ErrTruncatedHeader for %d bytes, got %v", n, err)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, kerrors.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), HeaderSize, 4096).Draw(rt, "data")

		c, err := Load("any.wav", data)
		if err != nil {
			rt.Fatalf("Load failed: %v", err)
		}
		got, err := c.Bytes()
		if err != nil {
			rt.Fatalf("Bytes failed: %v", err)
		}
		if !bytes.Equal(got, data) {
			rt.Fatalf("Expected byte-exact round trip of %d bytes", len(data))
		}
	})
}

func TestSaveFilePreservesSampleRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.wav")
	data := testWAV(t, bytes.Repeat([]byte{0xaa}, 64))
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	out := filepath.Join(dir, "out.wav")
	if err := c.SaveFile(out); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	saved, err := LoadFile(out)
	if err != nil {
		t.Fatalf("LoadFile(out) failed: %v", err)
	}
	if saved.Header().SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", saved.Header().SampleRate)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if !bytes.Equal(raw, data) {
		t.Error("Expected saved file to match the original byte for byte")
	}
}

func TestWriteTo(t *testing.T) {
	data := testWAV(t, []byte{9, 8, 7})
	c, err := Load("x.wav", data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(len(data)) {
		t.Errorf("Expected %d bytes written, got %d", len(data), n)
	}
	if !bytes.Equal(buf.Bytes(), data) {
		t.Error("Expected written bytes to match input")
	}
}

func TestCommit(t *testing.T) {
	c, err := Load("x.wav", testWAV(t, []byte{1, 2}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	c.Commit([]byte{3, 4, 5}, Encrypted)
	if c.State() != Encrypted {
		t.Errorf("Expected state %s, got %s", Encrypted, c.State())
	}
	if !bytes.Equal(c.Payload(), []byte{3, 4, 5}) {
		t.Errorf("Expected committed payload, got %x", c.Payload())
	}
	// Header is written verbatim even though the payload grew.
	if c.Header().Subchunk2Size != 2 {
		t.Errorf("Expected Subchunk2Size to stay 2, got %d", c.Header().Subchunk2Size)
	}
}

func TestPayloadIsCopy(t *testing.T) {
	c, err := Load("x.wav", testWAV(t, []byte{1, 2}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p := c.Payload()
	p[0] = 0xff
	if c.Payload()[0] != 1 {
		t.Error("Expected Payload to return a copy")
	}
}

func TestDescribe(t *testing.T) {
	// 2 channels, 16 bits, 44100 Hz: 176400 bytes per second.
	c, err := Load("song.wav", testWAV(t, make([]byte, 176400*3)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	desc := c.Describe()
	for _, want := range []string{
		"File name: song.wav",
		"Duration: 3s",
		"Chunk ID: RIFF",
		"Format: WAVE",
		"Channels: 2",
		"Sample rate: 44100",
		"Byte rate: 176400",
		"Subchunk2 size: 529200",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("Expected description to contain %q, got:\n%s", want, desc)
		}
	}
}

func TestDescribeZeroByteRate(t *testing.T) {
	c, err := Load("zero.wav", make([]byte, HeaderSize))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.Contains(c.Describe(), "Duration: unknown") {
		t.Errorf("Expected unknown duration, got:\n%s", c.Describe())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		Empty:     "empty",
		Loaded:    "loaded",
		Encrypted: "encrypted",
		Decrypted: "decrypted",
		State(9):  "State(9)",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Expected %q, got %q", want, s.String())
		}
	}
}
