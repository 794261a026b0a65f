// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

const (
	formatPCM = 1

	// size of the PCM core of a fmt chunk, anything after it is an extension
	formatCoreSize = 16
)

// FormatDescriptor holds the fields of the "fmt " chunk this package uses.
type FormatDescriptor struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
}

// GoAudioFormat converts the descriptor for use with github.com/go-audio.
func (f FormatDescriptor) GoAudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(f.Channels),
		SampleRate:  int(f.SampleRate),
	}
}

// parseFormatChunk consumes a fmt chunk payload of size bytes (and its pad
// byte). Only the 16 byte core is kept in memory, extension bytes are
// discarded.
func parseFormatChunk(r io.Reader, size uint32) (FormatDescriptor, error) {
	if size < formatCoreSize {
		return FormatDescriptor{}, fmt.Errorf("%w: %d bytes", ErrShortFormatChunk, size)
	}

	var raw [formatCoreSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return FormatDescriptor{}, readError(err)
	}

	if err := discard(r, paddedSize(size)-formatCoreSize); err != nil {
		return FormatDescriptor{}, err
	}

	f := FormatDescriptor{
		AudioFormat:   binary.LittleEndian.Uint16(raw[0:2]),
		Channels:      binary.LittleEndian.Uint16(raw[2:4]),
		SampleRate:    binary.LittleEndian.Uint32(raw[4:8]),
		BitsPerSample: binary.LittleEndian.Uint16(raw[14:16]),
	}

	if f.AudioFormat != formatPCM {
		return FormatDescriptor{}, fmt.Errorf("%w: format code %#04x", ErrUnsupportedAudioFormat, f.AudioFormat)
	}

	if f.BitsPerSample != 16 {
		return FormatDescriptor{}, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, f.BitsPerSample)
	}

	return f, nil
}
