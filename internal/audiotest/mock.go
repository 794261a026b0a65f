// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"time"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	pos        int // samples produced so far
	waveform   func(frame int, channel int) int16
	closed     bool
}

// NewMockSource creates a new mock audio source producing frames frames.
// waveform generates the sample value for a frame index and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSliceSource replays samples, which are taken as already interleaved.
func NewSliceSource(sampleRate, channels int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame, channel int) int16 {
		return samples[frame*channels+channel]
	})
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) int16 { return 0 })
}

// NewSineSource creates a mock source that generates a half-scale sine wave.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(16384 * math.Sin(2*math.Pi*frequency*t))
	})
}

func (m *MockSource) SampleRate() int                      { return m.sampleRate }
func (m *MockSource) Channels() int                        { return m.channels }
func (m *MockSource) FrameLen() (int, bool)                { return m.frames*m.channels - m.pos, true }
func (m *MockSource) TotalDuration() (time.Duration, bool) { return time.Duration(m.frames) * time.Second / time.Duration(m.sampleRate), true }

// Close marks the source as closed, Closed reports it.
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) Next() (int16, bool) {
	if m.closed || m.pos >= m.frames*m.channels {
		return 0, false
	}

	v := m.waveform(m.pos/m.channels, m.pos%m.channels)
	m.pos++

	return v, true
}
