// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"

	"github.com/ik5/wavstream/internal/audiotest"
)

// mockOggVorbisReader simulates oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	chunk      int // max samples per Read, 0 for no limit
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	if m.chunk > 0 && len(buf) > m.chunk {
		buf = buf[:m.chunk]
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func drain(src *source) []int16 {
	var out []int16
	for {
		v, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
	if src != nil {
		t.Errorf("Decode() source = %v, want nil", src)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 48000, channels: 2}, nil)

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if _, ok := src.TotalDuration(); ok {
		t.Error("TotalDuration() reported a known duration")
	}
}

func TestSource_BufferHoldsWholeFrames(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{1, 2, 3, 6} {
		src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: channels}, nil)
		if len(src.buf)%channels != 0 {
			t.Errorf("channels=%d: buffer length %d is not a multiple of the frame size", channels, len(src.buf))
		}
	}
}

func TestSource_Next_Conversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{0.5, 16384},
		{-0.5, -16384},
		{-1, -32768},
		{1, 32767},
		{2, 32767},
		{-2, -32768},
	}

	in := make([]float32, len(tests))
	for i, tt := range tests {
		in[i] = tt.in
	}

	got := drain(newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 1, samples: in}, nil))
	if len(got) != len(tests) {
		t.Fatalf("got %d samples, want %d", len(got), len(tests))
	}
	for i, tt := range tests {
		if got[i] != tt.want {
			t.Errorf("Next() for %v = %d, want %d", tt.in, got[i], tt.want)
		}
	}
}

func TestSource_Next_SmallReads(t *testing.T) {
	t.Parallel()

	in := make([]float32, 1000)
	for i := range in {
		in[i] = float32(i%200-100) / 200
	}

	dec := &mockOggVorbisReader{sampleRate: 22050, channels: 2, samples: in, chunk: 7}
	got := drain(newSource(dec, nil))

	if len(got) != len(in) {
		t.Errorf("got %d samples, want %d", len(got), len(in))
	}
}

func TestSource_Next_ErrorEndsStream(t *testing.T) {
	t.Parallel()

	dec := &mockOggVorbisReader{
		sampleRate: 44100,
		channels:   1,
		samples:    []float32{0.1, 0.2, 0.3},
		err:        audiotest.ErrBroken,
	}
	src := newSource(dec, nil)

	if got := drain(src); len(got) != 3 {
		t.Errorf("got %d samples before the error, want 3", len(got))
	}
	if _, ok := src.Next(); ok {
		t.Error("Next() after the error returned a sample")
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	body := &audiotest.CloseTracker{Reader: bytes.NewReader(nil)}
	src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 1, samples: []float32{0.5}}, body)

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	if body.Closed != 1 {
		t.Errorf("underlying reader closed %d times, want 1", body.Closed)
	}
	if _, ok := src.Next(); ok {
		t.Error("Next() after Close returned a sample")
	}
}

func BenchmarkSource_Next(b *testing.B) {
	in := make([]float32, 44100*2)
	for i := range in {
		in[i] = float32(i%100) / 100
	}

	for b.Loop() {
		src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: in}, nil)
		for {
			if _, ok := src.Next(); !ok {
				break
			}
		}
	}
}
