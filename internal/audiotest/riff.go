// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// RIFFBuilder assembles RIFF/WAVE byte streams chunk by chunk, so tests can
// produce unusual layouts (chunks out of order, odd sizes, bad tags).
type RIFFBuilder struct {
	buf bytes.Buffer
}

// NewRIFFBuilder starts a stream with the given envelope and form tags.
// The declared RIFF size is a placeholder, the way streaming servers emit it.
func NewRIFFBuilder(envelope, form string) *RIFFBuilder {
	b := &RIFFBuilder{}
	b.buf.WriteString(envelope)
	binary.Write(&b.buf, binary.LittleEndian, uint32(0xFFFFFFFF))
	b.buf.WriteString(form)

	return b
}

// NewWAVBuilder is NewRIFFBuilder("RIFF", "WAVE").
func NewWAVBuilder() *RIFFBuilder {
	return NewRIFFBuilder("RIFF", "WAVE")
}

// Chunk appends a chunk with payload, adding the pad byte for odd sizes.
func (b *RIFFBuilder) Chunk(id string, payload []byte) *RIFFBuilder {
	b.buf.WriteString(id)
	binary.Write(&b.buf, binary.LittleEndian, uint32(len(payload)))
	b.buf.Write(payload)
	if len(payload)%2 == 1 {
		b.buf.WriteByte(0)
	}

	return b
}

// Format appends a 16 byte "fmt " chunk.
func (b *RIFFBuilder) Format(code, channels uint16, sampleRate uint32, bits uint16) *RIFFBuilder {
	return b.Chunk("fmt ", FormatPayload(code, channels, sampleRate, bits))
}

// Data appends the "data" chunk header followed by payload. The payload is
// not padded since it runs to the end of the stream.
func (b *RIFFBuilder) Data(payload []byte) *RIFFBuilder {
	b.buf.WriteString("data")
	binary.Write(&b.buf, binary.LittleEndian, uint32(len(payload)))
	b.buf.Write(payload)

	return b
}

// Raw appends arbitrary bytes.
func (b *RIFFBuilder) Raw(p []byte) *RIFFBuilder {
	b.buf.Write(p)
	return b
}

func (b *RIFFBuilder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// FormatPayload encodes the 16 byte PCM core of a "fmt " chunk.
func FormatPayload(code, channels uint16, sampleRate uint32, bits uint16) []byte {
	p := make([]byte, 16)
	blockAlign := channels * (bits / 8)

	binary.LittleEndian.PutUint16(p[0:2], code)
	binary.LittleEndian.PutUint16(p[2:4], channels)
	binary.LittleEndian.PutUint32(p[4:8], sampleRate)
	binary.LittleEndian.PutUint32(p[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(p[12:14], blockAlign)
	binary.LittleEndian.PutUint16(p[14:16], bits)

	return p
}

// PCM16 encodes samples as little-endian int16 bytes.
func PCM16(samples ...int16) []byte {
	p := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(s))
	}

	return p
}
