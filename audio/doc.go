// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample stream abstraction and the processing
// stages built on it.
//
// # Source Interface
//
// Every decoder and processor produces a Source, a pull-based stream of
// interleaved signed 16-bit samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    FrameLen() (int, bool)
//	    TotalDuration() (time.Duration, bool)
//	    Next() (int16, bool)
//	    Close() error
//	}
//
// Next returns false once the stream is over and keeps returning false
// afterwards. Samples adapts a Source to a range-over-func sequence and
// Collect drains it into a slice.
//
// # Processing Stages
//
//   - Resampler changes the sample rate with cubic interpolation, low-pass
//     filtering the input when downsampling
//   - MonoMixer averages each frame down to one channel
//   - PCMReader exposes a Source as little-endian bytes through io.Reader,
//     ready for an audio device or a file
//
// Stages wrap a Source and are Sources themselves, so they chain:
//
//	r, err := audio.NewResampler(src, 16000)
//	if err != nil {
//	    return err
//	}
//	pcm := audio.NewPCMReader(audio.NewMonoMixer(r))
//
// Closing a stage closes the Source it wraps.
//
// # Format Registry
//
// Registry maps format keys ("wav", "mp3", "ogg", "aiff") to decoders. Lookup
// resolves an HTTP Content-Type to the matching key first.
package audio
