// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"
)

// PCMReader serialises a Source as interleaved little-endian 16-bit PCM
// bytes, the layout audio output devices consume.
type PCMReader struct {
	src     Source
	pending [2]byte
	hasHigh bool // pending[1] still has to be emitted
}

func NewPCMReader(src Source) *PCMReader {
	return &PCMReader{src: src}
}

func (p *PCMReader) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	n := 0
	if p.hasHigh {
		buf[0] = p.pending[1]
		p.hasHigh = false
		n++
	}

	for n < len(buf) {
		v, ok := p.src.Next()
		if !ok {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}

		if len(buf)-n >= 2 {
			binary.LittleEndian.PutUint16(buf[n:], uint16(v))
			n += 2
			continue
		}

		// one byte of room left, keep the high byte for the next call
		binary.LittleEndian.PutUint16(p.pending[:], uint16(v))
		buf[n] = p.pending[0]
		p.hasHigh = true
		n++
	}

	return n, nil
}
