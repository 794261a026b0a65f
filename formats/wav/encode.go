// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavstream/audio"
)

// encodeBatch is the number of samples handed to the encoder per write.
const encodeBatch = 4096

// Encode drains src into w as a 16-bit PCM WAV file and returns the number of
// samples written. The header sizes are patched when the encoder is closed,
// which is why w has to be seekable. src is not closed.
func Encode(w io.WriteSeeker, src audio.Source) (int, error) {
	channels := src.Channels()
	if channels <= 0 {
		return 0, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, channels)
	}

	enc := gowav.NewEncoder(w, src.SampleRate(), 16, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, max(encodeBatch-encodeBatch%channels, channels)),
		SourceBitDepth: 16,
	}

	total := 0
	for {
		n := 0
		for n < len(buf.Data) {
			v, ok := src.Next()
			if !ok {
				break
			}
			buf.Data[n] = int(v)
			n++
		}

		// the first write also emits the header, so it happens even for an
		// empty source
		if n > 0 || total == 0 {
			chunk := *buf
			chunk.Data = buf.Data[:n]
			if err := enc.Write(&chunk); err != nil {
				return total, fmt.Errorf("%w", err)
			}
			total += n
		}

		if n < len(buf.Data) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return total, fmt.Errorf("%w", err)
	}

	return total, nil
}
