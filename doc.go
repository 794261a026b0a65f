// SPDX-License-Identifier: EPL-2.0

// Package wavstream decodes audio that is still arriving, most notably the
// chunked WAV responses of text-to-speech servers, and turns it into 16-bit
// PCM samples.
//
// # Supported Formats
//
//   - WAV (PCM 16-bit, streamed) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// DefaultRegistry bundles all four, keyed by format name. Registry.Lookup
// picks one from an HTTP Content-Type.
//
// # Quick Start
//
//	resp, _ := http.Get(url)
//	src, err := wav.NewStreamingSource(bufio.NewReader(resp.Body))
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	for sample := range src.Samples() {
//	    // available as soon as its two bytes arrive
//	}
//
// For finite input, ResampleToMono16 collects a whole source as mono samples
// at a chosen rate.
//
// # Packages
//
//   - audio: the Source interface, resampling, mixing and byte conversion
//   - client: HTTP client for a streaming TTS server
//   - playback: plays a Source on the default audio device
//   - cmd/wavstream: interactive command line front end
package wavstream
