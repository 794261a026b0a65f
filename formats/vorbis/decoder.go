// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"time"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/wavstream/audio"
	"github.com/ik5/wavstream/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns how many it wrote.
	Read(p []float32) (int, error)
}

type source struct {
	dec    oggReader
	closer io.Closer
	buf    []float32
	pos    int
	n      int
	done   bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }

func (s *source) FrameLen() (int, bool)                { return 0, false }
func (s *source) TotalDuration() (time.Duration, bool) { return 0, false }

func (s *source) Next() (int16, bool) {
	for s.pos >= s.n {
		if s.done {
			return 0, false
		}

		n, err := s.dec.Read(s.buf)
		s.pos, s.n = 0, n
		if err != nil {
			// samples decoded alongside the error are still delivered
			s.done = true
		} else if n == 0 {
			s.done = true
		}
	}

	v := s.buf[s.pos]
	s.pos++

	return utils.Float32ToInt16(v), true
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
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec, r), nil
}

func newSource(dec oggReader, r io.Reader) *source {
	channels := max(dec.Channels(), 1)
	src := &source{
		dec: dec,
		buf: make([]float32, 4096-4096%channels),
	}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}

	return src
}
