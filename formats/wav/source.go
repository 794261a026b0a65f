// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"io"
	"iter"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavstream/audio"
)

// StreamingSource decodes the payload of a 16-bit PCM WAV stream on demand.
//
// It owns the reader it was built from. Samples are produced by reading two
// bytes at a time, so the full payload is never held in memory and the total
// length is never known. Any read failure, including a clean end of input,
// ends the sample sequence without an error. Err reports what ended it.
type StreamingSource struct {
	r      io.Reader
	format FormatDescriptor
	buf    [2]byte
	done   bool
	err    error
}

var _ audio.Source = (*StreamingSource)(nil)

// NewStreamingSource reads the WAV header from r and returns a source
// positioned at the first sample. On failure no source is returned and r
// should be discarded, since an unknown number of bytes has been consumed.
func NewStreamingSource(r io.Reader) (*StreamingSource, error) {
	format, err := scan(r)
	if err != nil {
		return nil, err
	}

	return &StreamingSource{
		r:      r,
		format: format,
	}, nil
}

func (s *StreamingSource) SampleRate() int { return int(s.format.SampleRate) }
func (s *StreamingSource) Channels() int   { return int(s.format.Channels) }

// Format returns the fmt chunk the stream was decoded with.
func (s *StreamingSource) Format() FormatDescriptor { return s.format }

// FrameLen is unknown for a stream.
func (s *StreamingSource) FrameLen() (int, bool) { return 0, false }

// TotalDuration is unknown ahead of time for a stream.
func (s *StreamingSource) TotalDuration() (time.Duration, bool) { return 0, false }

func (s *StreamingSource) Next() (int16, bool) {
	if s.done {
		return 0, false
	}

	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return 0, false
	}

	return int16(binary.LittleEndian.Uint16(s.buf[:])), true
}

// Samples ranges over the remaining samples. See audio.Samples.
func (s *StreamingSource) Samples() iter.Seq[int16] {
	return audio.Samples(s)
}

// Err returns the read error that ended the sample sequence. It is nil while
// samples are still flowing and after a clean end of input. A trailing odd
// byte is reported as io.ErrUnexpectedEOF.
func (s *StreamingSource) Err() error {
	return s.err
}

// PCMBuffer fills buf.Data with the next samples for use with go-audio
// encoders. It returns io.EOF once the sequence is over and nothing was read.
func (s *StreamingSource) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	buf.Format = s.format.GoAudioFormat()
	buf.SourceBitDepth = int(s.format.BitsPerSample)

	n := 0
	for n < len(buf.Data) {
		v, ok := s.Next()
		if !ok {
			break
		}
		buf.Data[n] = int(v)
		n++
	}

	if n == 0 && len(buf.Data) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Close ends the sequence and closes the underlying reader if it is an
// io.Closer.
func (s *StreamingSource) Close() error {
	s.done = true

	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Decoder implements audio.Decoder for streamed WAV input.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	src, err := NewStreamingSource(r)
	if err != nil {
		return nil, err
	}

	return src, nil
}
