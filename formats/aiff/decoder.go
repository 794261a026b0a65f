// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavstream/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	closer     io.Closer
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	pos        int
	n          int
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) FrameLen() (int, bool)                { return 0, false }
func (s *source) TotalDuration() (time.Duration, bool) { return 0, false }

func (s *source) Next() (int16, bool) {
	for s.pos >= s.n {
		if s.done {
			return 0, false
		}

		n, err := s.dec.PCMBuffer(s.intBuf)
		s.pos, s.n = 0, n
		if err != nil || n == 0 {
			s.done = true
		}
	}

	v := s.intBuf.Data[s.pos]
	s.pos++

	return int16(v), true
}

func (s *source) Close() error {
	s.done = true
	s.pos, s.n = 0, 0
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker, so a stream has to be read into memory
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	src := newSource(dec, format)
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}

	return src, nil
}

func newSource(dec aiffReader, format *goaudio.Format) *source {
	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, max(4096-4096%format.NumChannels, format.NumChannels)),
			Format:         format,
			SourceBitDepth: 16,
		},
	}
}
