// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"

	"github.com/ik5/wavstream/utils"
)

// Resampler converts a Source to another sample rate using Catmull-Rom cubic
// interpolation. When downsampling a one-pole low-pass filter is applied to
// the input frames to reduce aliasing.
//
// The last input frame is repeated once as a lookahead pad, so resampling to
// the source's own rate yields the input unchanged.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	frames   [4][]float32
	hasFrame [4]bool
	pos      float64

	primed  bool
	srcDone bool
	padded  bool
	done    bool

	out    []int16
	outPos int

	useFilter   bool
	filterAlpha float32
	filterState []float32
	filterInit  bool
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		out:         make([]int16, channels),
		outPos:      channels,
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) FrameLen() (int, bool) { return 0, false }

func (r *Resampler) TotalDuration() (time.Duration, bool) {
	return r.src.TotalDuration()
}

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (r *Resampler) Next() (int16, bool) {
	if r.outPos >= r.channels {
		if r.done || !r.nextFrame() {
			r.done = true
			return 0, false
		}
		r.outPos = 0
	}

	v := r.out[r.outPos]
	r.outPos++

	return v, true
}

// readFrame pulls one full interleaved frame from the source. A partial
// trailing frame is dropped.
func (r *Resampler) readFrame(dst []float32) bool {
	if r.srcDone {
		return false
	}

	for c := range r.channels {
		v, ok := r.src.Next()
		if !ok {
			r.srcDone = true
			return false
		}
		dst[c] = utils.Int16ToFloat32(v)
	}

	if r.useFilter {
		if !r.filterInit {
			copy(r.filterState, dst)
			r.filterInit = true
		}
		for c := range r.channels {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}

	return true
}

// fill loads slot i, padding with the previous frame once the source ends.
func (r *Resampler) fill(i int) {
	if r.readFrame(r.frames[i]) {
		r.hasFrame[i] = true
		return
	}

	if !r.padded && i > 0 && r.hasFrame[i-1] {
		copy(r.frames[i], r.frames[i-1])
		r.hasFrame[i] = true
		r.padded = true
		return
	}

	r.hasFrame[i] = false
}

func (r *Resampler) advance() {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]

	r.fill(3)
}

func (r *Resampler) prime() bool {
	r.primed = true

	if !r.readFrame(r.frames[1]) {
		return false
	}
	r.hasFrame[1] = true

	copy(r.frames[0], r.frames[1])
	r.hasFrame[0] = true

	r.fill(2)
	r.fill(3)

	return true
}

func (r *Resampler) nextFrame() bool {
	if !r.primed && !r.prime() {
		return false
	}

	for r.pos >= 1.0 {
		r.pos -= 1.0
		r.advance()
	}

	if !r.hasFrame[1] || !r.hasFrame[2] {
		return false
	}

	alpha := float32(r.pos)
	for c := range r.channels {
		y0 := r.frames[1][c]
		if r.hasFrame[0] {
			y0 = r.frames[0][c]
		}

		y3 := r.frames[2][c]
		if r.hasFrame[3] {
			y3 = r.frames[3][c]
		}

		v := utils.CubicInterpolate(y0, r.frames[1][c], r.frames[2][c], y3, alpha)
		r.out[c] = utils.Float32ToInt16(v)
	}

	r.pos += r.ratio

	return true
}
