// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"mime"
	"strings"
	"sync"
	"time"
)

// Source is a pull-based stream of interleaved signed 16-bit samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// FrameLen reports how many samples remain until the format may change.
	// ok is false when the length is unknown, which is always the case for
	// streamed input.
	FrameLen() (n int, ok bool)
	// TotalDuration of the stream, ok is false when it cannot be known ahead
	// of time.
	TotalDuration() (d time.Duration, ok bool)
	// Next returns the next sample. Once it returns false the stream is over
	// and every following call returns false too.
	Next() (int16, bool)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// mediaTypes maps the MIME types servers commonly send to registry keys.
var mediaTypes = map[string]string{
	"audio/wav":       "wav",
	"audio/wave":      "wav",
	"audio/x-wav":     "wav",
	"audio/vnd.wave":  "wav",
	"audio/mpeg":      "mp3",
	"audio/mp3":       "mp3",
	"audio/ogg":       "ogg",
	"audio/vorbis":    "ogg",
	"application/ogg": "ogg",
	"audio/aiff":      "aiff",
	"audio/x-aiff":    "aiff",
}

// Lookup resolves a Content-Type header value such as
// "audio/wav; codecs=1" to a registered decoder.
func (r *Registry) Lookup(contentType string) (Decoder, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, false
	}

	format, ok := mediaTypes[mediaType]
	if !ok {
		return nil, false
	}

	return r.Get(format)
}
