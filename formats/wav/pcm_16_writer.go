// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// canonicalHeaderSize is RIFF envelope + 16 byte fmt chunk + data chunk header.
const canonicalHeaderSize = containerHeaderSize + chunkHeaderSize + formatCoreSize + chunkHeaderSize

// writeBatch is the number of samples converted per Write call.
const writeBatch = 8192

// WriteWAV16 writes samples as a canonical 44 byte header 16-bit PCM WAV.
// samples are interleaved when channels > 1. Unlike Encode it works on plain
// io.Writers because every size is known up front.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, channels)
	}

	dataSize := uint32(len(samples) * 2)
	blockAlign := uint16(channels * 2)

	header := make([]byte, 0, canonicalHeaderSize)
	header = append(header, riff.RiffID[:]...)
	header = binary.LittleEndian.AppendUint32(header, canonicalHeaderSize-8+dataSize)
	header = append(header, riff.WavFormatID[:]...)

	header = append(header, riff.FmtID[:]...)
	header = binary.LittleEndian.AppendUint32(header, formatCoreSize)
	header = binary.LittleEndian.AppendUint16(header, formatPCM)
	header = binary.LittleEndian.AppendUint16(header, uint16(channels))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate)*uint32(blockAlign))
	header = binary.LittleEndian.AppendUint16(header, blockAlign)
	header = binary.LittleEndian.AppendUint16(header, 16)

	header = append(header, riff.DataFormatID[:]...)
	header = binary.LittleEndian.AppendUint32(header, dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := make([]byte, 0, min(len(samples), writeBatch)*2)
	for len(samples) > 0 {
		batch := samples[:min(len(samples), writeBatch)]
		samples = samples[len(batch):]

		buf = buf[:0]
		for _, s := range batch {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
