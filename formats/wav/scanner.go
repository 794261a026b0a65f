// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/riff"
)

// scan validates the envelope and walks the chunk list until the "data"
// chunk header has been consumed, leaving r positioned at the first sample.
//
// A "fmt " chunk must come before "data". Unknown chunks are skipped, and a
// repeated "fmt " chunk replaces the earlier one.
func scan(r io.Reader) (FormatDescriptor, error) {
	if _, err := readContainerHeader(r); err != nil {
		return FormatDescriptor{}, err
	}

	var (
		format     FormatDescriptor
		formatSeen bool
	)

	for {
		h, err := readChunkHeader(r)
		if err != nil {
			return FormatDescriptor{}, err
		}

		switch h.ID {
		case riff.FmtID:
			format, err = parseFormatChunk(r, h.Size)
			if err != nil {
				return FormatDescriptor{}, err
			}
			formatSeen = true

		case riff.DataFormatID:
			if !formatSeen {
				return FormatDescriptor{}, ErrMissingFormatChunk
			}
			return format, nil

		default:
			if err := skipChunk(r, h.Size); err != nil {
				return FormatDescriptor{}, err
			}
		}
	}
}
