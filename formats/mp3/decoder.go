// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavstream/audio"
)

// go-mp3 always produces interleaved stereo.
const channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	// Length is the decoded size in bytes, -1 when the input is not seekable.
	Length() int64
}

type source struct {
	dec    mp3Reader
	closer io.Closer
	buf    [2]byte
	done   bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }

func (s *source) FrameLen() (int, bool) { return 0, false }

func (s *source) TotalDuration() (time.Duration, bool) {
	size := s.dec.Length()
	if size < 0 || s.dec.SampleRate() <= 0 {
		return 0, false
	}

	frames := size / (2 * channels)
	return time.Duration(frames) * time.Second / time.Duration(s.dec.SampleRate()), true
}

func (s *source) Next() (int16, bool) {
	if s.done {
		return 0, false
	}

	if _, err := io.ReadFull(s.dec, s.buf[:]); err != nil {
		s.done = true
		return 0, false
	}

	return int16(binary.LittleEndian.Uint16(s.buf[:])), true
}

func (s *source) Close() error {
	s.done = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src := &source{dec: dec}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}

	return src, nil
}
