// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidEnvelope        = errors.New("not a RIFF stream")
	ErrInvalidFormatTag       = errors.New("RIFF form is not WAVE")
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format, only PCM is supported")
	ErrUnsupportedBitDepth    = errors.New("only 16 bits per sample is supported")
	ErrMissingFormatChunk     = errors.New("data chunk reached before fmt chunk")
	ErrShortFormatChunk       = errors.New("fmt chunk too short")
	ErrUnexpectedEOF          = errors.New("WAV stream ended before the data chunk")
	ErrIO                     = errors.New("reading WAV stream failed")
)

// readError classifies a failed header read. Running out of input is
// ErrUnexpectedEOF, anything else is ErrIO. The cause stays wrapped.
func readError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrUnexpectedEOF, err)
	}

	return fmt.Errorf("%w: %w", ErrIO, err)
}

// ErrUnsupportedChannels is returned by the writers for a channel count < 1.
var ErrUnsupportedChannels = errors.New("channel count must be positive")
