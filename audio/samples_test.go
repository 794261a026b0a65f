package audio

import (
	"slices"
	"testing"

	"github.com/ik5/wavstream/internal/audiotest"
)

func TestSamples(t *testing.T) {
	t.Parallel()

	want := []int16{1, -2, 3, -4, 5, -6}
	src := audiotest.NewSliceSource(8000, 2, want)

	if got := slices.Collect(Samples(src)); !slices.Equal(got, want) {
		t.Errorf("Samples() = %v, want %v", got, want)
	}
}

func TestSamples_ResumeAfterBreak(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSliceSource(8000, 1, []int16{10, 20, 30, 40})

	for v := range Samples(src) {
		if v != 10 {
			t.Errorf("first sample = %d, want 10", v)
		}
		break
	}

	if got := slices.Collect(Samples(src)); !slices.Equal(got, []int16{20, 30, 40}) {
		t.Errorf("second range = %v, want [20 30 40]", got)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"all", 0, 100},
		{"negative", -1, 100},
		{"limited", 10, 10},
		{"over length", 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSilentSource(8000, 1, 100)
			if got := Collect(src, tt.limit); len(got) != tt.want {
				t.Errorf("Collect(%d) returned %d samples, want %d", tt.limit, len(got), tt.want)
			}
		})
	}
}
