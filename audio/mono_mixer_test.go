package audio

import (
	"slices"
	"testing"

	"github.com/ik5/wavstream/internal/audiotest"
)

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(44100, 2, 100))

	if mono.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", mono.SampleRate())
	}
	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}
	if d, ok := mono.TotalDuration(); !ok || d <= 0 {
		t.Errorf("TotalDuration() = %v, %v, want the source's duration", d, ok)
	}
}

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		in       []int16
		want     []int16
	}{
		{"mono passthrough", 1, []int16{1, -2, 3}, []int16{1, -2, 3}},
		{"stereo", 2, []int16{100, 300, -100, -300}, []int16{200, -200}},
		{"stereo no overflow", 2, []int16{32767, 32767, -32768, -32768}, []int16{32767, -32768}},
		{"opposite phase", 2, []int16{1000, -1000}, []int16{0}},
		{"5.1", 6, []int16{6, 6, 6, 6, 6, 6, 0, 0, 0, 0, 0, 60}, []int16{6, 10}},
		{"partial frame dropped", 2, []int16{10, 20, 30}, []int16{15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &truncatedSource{
				Source: audiotest.NewMockSource(8000, tt.channels, (len(tt.in)+tt.channels-1)/tt.channels, func(frame, ch int) int16 {
					if i := frame*tt.channels + ch; i < len(tt.in) {
						return tt.in[i]
					}
					return 0
				}),
				left: len(tt.in),
			}

			if got := Collect(NewMonoMixer(src), 0); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonoMixer_EndIsSticky(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 2))
	Collect(mono, 0)

	if _, ok := mono.Next(); ok {
		t.Error("Next() returned a sample after the end")
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 2)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	for b.Loop() {
		mono := NewMonoMixer(audiotest.NewSineSource(44100, 2, 44100, 440))
		for {
			if _, ok := mono.Next(); !ok {
				break
			}
		}
	}
}
