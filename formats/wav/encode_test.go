// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/wavstream/internal/audiotest"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := make([]int16, encodeBatch*2+6)
	for i := range samples {
		samples[i] = int16(i*13 - 20000)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	n, err := Encode(f, audiotest.NewSliceSource(24000, 2, samples))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if n != len(samples) {
		t.Errorf("Encode() wrote %d samples, want %d", n, len(samples))
	}

	if _, err := f.Seek(0, 0); err != nil {
		t.Fatal(err)
	}

	src, err := NewStreamingSource(f)
	if err != nil {
		t.Fatalf("NewStreamingSource() error = %v", err)
	}

	if src.SampleRate() != 24000 || src.Channels() != 2 {
		t.Errorf("metadata = %d ch @ %d Hz, want 2 ch @ 24000 Hz", src.Channels(), src.SampleRate())
	}

	if got := drain(src); !slices.Equal(got, samples) {
		t.Errorf("decoded %d samples, want the %d encoded ones", len(got), len(samples))
	}
}

func TestEncode_InvalidChannels(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, err = Encode(f, audiotest.NewSilentSource(8000, 0, 10))
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("error = %v, want ErrUnsupportedChannels", err)
	}
}
