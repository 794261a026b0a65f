package audio

import (
	"errors"
	"testing"

	"github.com/ik5/wavstream/internal/audiotest"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrInvalidChannels, ErrInvalidSampleRate) {
		t.Error("ErrInvalidChannels matches ErrInvalidSampleRate")
	}
	if ErrInvalidChannels.Error() == ErrInvalidSampleRate.Error() {
		t.Error("errors share a message")
	}
}

func TestNewResampler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     Source
		dstRate int
		want    error
	}{
		{"zero target", audiotest.NewSilentSource(8000, 1, 10), 0, ErrInvalidSampleRate},
		{"negative target", audiotest.NewSilentSource(8000, 1, 10), -16000, ErrInvalidSampleRate},
		{"zero source rate", audiotest.NewSilentSource(0, 1, 10), 8000, ErrInvalidSampleRate},
		{"no channels", audiotest.NewMockSource(8000, 0, 0, nil), 8000, ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewResampler(tt.src, tt.dstRate)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewResampler() error = %v, want %v", err, tt.want)
			}
			if r != nil {
				t.Errorf("NewResampler() = %v, want nil", r)
			}
		})
	}
}
