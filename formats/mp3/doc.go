// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// Output is always interleaved stereo 16-bit samples at the stream's own
// rate. Pipe it through audio.NewMonoMixer or audio.NewResampler when the
// consumer needs something else:
//
//	src, err := mp3.Decoder{}.Decode(resp.Body)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewMonoMixer(src)
//
// TotalDuration is known only when the input is an io.Seeker, since go-mp3
// has to scan the frames to learn the length.
package mp3
