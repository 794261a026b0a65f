// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"
)

const chunkHeaderSize = 8

// ChunkHeader is the id and little-endian payload length that precede every
// chunk inside the RIFF envelope.
type ChunkHeader struct {
	ID   [4]byte
	Size uint32
}

func (h ChunkHeader) String() string {
	return string(h.ID[:])
}

func readChunkHeader(r io.Reader) (ChunkHeader, error) {
	var raw [chunkHeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return ChunkHeader{}, readError(err)
	}

	var h ChunkHeader
	copy(h.ID[:], raw[0:4])
	h.Size = binary.LittleEndian.Uint32(raw[4:8])

	return h, nil
}

// paddedSize is size rounded up to the RIFF word boundary.
func paddedSize(size uint32) int64 {
	return int64(size) + int64(size&1)
}

// skipChunk discards a chunk payload of size bytes plus its pad byte.
// io.Discard copies through a fixed pooled buffer, so memory use does not
// depend on size.
func skipChunk(r io.Reader, size uint32) error {
	return discard(r, paddedSize(size))
}

func discard(r io.Reader, n int64) error {
	if n == 0 {
		return nil
	}

	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return readError(err)
	}

	return nil
}
