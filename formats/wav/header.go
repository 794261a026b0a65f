// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"

	"github.com/go-audio/riff"
)

const containerHeaderSize = 12

// ContainerHeader is the fixed 12 byte envelope at the start of the stream.
type ContainerHeader struct {
	ID     [4]byte
	Size   uint32 // not trusted, streaming servers write placeholders here
	Format [4]byte
}

// readContainerHeader consumes the envelope and checks its two tags. The
// stream is advanced by 12 bytes whether or not the check passes.
func readContainerHeader(r io.Reader) (ContainerHeader, error) {
	var raw [containerHeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return ContainerHeader{}, readError(err)
	}

	var h ContainerHeader
	copy(h.ID[:], raw[0:4])
	h.Size = binary.LittleEndian.Uint32(raw[4:8])
	copy(h.Format[:], raw[8:12])

	if h.ID != riff.RiffID {
		return ContainerHeader{}, ErrInvalidEnvelope
	}

	if h.Format != riff.WavFormatID {
		return ContainerHeader{}, ErrInvalidFormatTag
	}

	return h, nil
}
