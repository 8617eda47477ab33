package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"

	kerrors "github.com/PolarWolf314/audiocrypt/internal/errors"
)

// HeaderSize is the length of the canonical WAV header in bytes.
const HeaderSize = 44

// Header is the canonical RIFF/WAVE header. Integers are little-endian
// on disk.
type Header struct {
	ChunkID       [4]byte
	ChunkSize     int32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size int32
	AudioFormat   int16
	NumChannels   int16
	SampleRate    int32
	ByteRate      int32
	BlockAlign    int16
	BitsPerSample int16
	Subchunk2ID   [4]byte
	Subchunk2Size int32
}

// ParseHeader extracts the header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: got %d bytes, need %d", kerrors.ErrTruncatedHeader, len(data), HeaderSize)
	}
	if err := binary.Read(bytes.NewReader(data[:HeaderSize]), binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("%w: %v", kerrors.ErrTruncatedHeader, err)
	}
	return h, nil
}

// MarshalBinary encodes the header into exactly HeaderSize bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewPCMHeader returns a header for uncompressed PCM audio with dataLen
// bytes of samples.
func NewPCMHeader(channels, sampleRate, bitsPerSample, dataLen int) Header {
	blockAlign := channels * bitsPerSample / 8
	return Header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     int32(36 + dataLen),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   int16(channels),
		SampleRate:    int32(sampleRate),
		ByteRate:      int32(sampleRate * blockAlign),
		BlockAlign:    int16(blockAlign),
		BitsPerSample: int16(bitsPerSample),
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: int32(dataLen),
	}
}
