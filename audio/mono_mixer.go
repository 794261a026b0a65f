// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// MonoMixer averages each interleaved frame of src into a single sample.
type MonoMixer struct {
	src  Source
	done bool
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }

func (m *MonoMixer) FrameLen() (int, bool) { return 0, false }

func (m *MonoMixer) TotalDuration() (time.Duration, bool) {
	return m.src.TotalDuration()
}

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) Next() (int16, bool) {
	if m.done {
		return 0, false
	}

	channels := m.src.Channels()
	if channels <= 1 {
		v, ok := m.src.Next()
		m.done = !ok
		return v, ok
	}

	var sum int32
	for range channels {
		v, ok := m.src.Next()
		if !ok {
			// a trailing partial frame is dropped
			m.done = true
			return 0, false
		}
		sum += int32(v)
	}

	return int16(sum / int32(channels)), true
}
