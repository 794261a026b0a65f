// SPDX-License-Identifier: EPL-2.0

package wavstream

import (
	"fmt"
	"time"

	"github.com/ik5/wavstream/audio"
)

// ResampleToMono16 resamples src to targetRate, mixes it down to mono and
// collects every sample. It returns the samples and their rate.
//
// src is drained but not closed. Do not call it on an endless stream.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := wavstream.ResampleToMono16(src, 8000)
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(src audio.Source, targetRate int) ([]int16, int, error) {
	resampler, err := audio.NewResampler(src, targetRate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	mono := audio.NewMonoMixer(resampler)

	// size the slice from the duration when the source knows it
	var pcm16 []int16
	if d, ok := src.TotalDuration(); ok && d > 0 {
		pcm16 = make([]int16, 0, int(d*time.Duration(targetRate)/time.Second)+1)
	}

	for v := range audio.Samples(mono) {
		pcm16 = append(pcm16, v)
	}

	return pcm16, targetRate, nil
}
