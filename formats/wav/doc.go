// SPDX-License-Identifier: EPL-2.0

// Package wav decodes 16-bit PCM WAV streams incrementally and writes WAV
// files.
//
// The decoder is built for input that arrives over the network and may never
// end: it reads only the bytes needed to reach the "data" chunk and then
// produces samples on demand, two bytes at a time. Nothing is buffered beyond
// what the supplied io.Reader does itself, so wrap slow or chunky readers in a
// bufio.Reader.
//
// # Decoding
//
//	src, err := wav.NewStreamingSource(resp.Body)
//	if err != nil {
//	    // header problem, src is nil
//	}
//	defer src.Close()
//
//	for sample := range src.Samples() {
//	    // interleaved int16 samples, src.Channels() per frame
//	}
//
// Header parsing follows the RIFF rules:
//   - the stream must start with "RIFF", size, "WAVE"
//   - chunks are walked in order, unknown ones are skipped together with
//     their pad byte when the size is odd
//   - a "fmt " chunk with format code 1 (PCM) and 16 bits per sample must
//     appear before the "data" chunk
//
// The size declared by the "data" chunk is ignored. Streaming servers cannot
// know it up front and write a placeholder, so samples are produced until the
// reader is exhausted.
//
// # Errors
//
// Construction fails with one of ErrInvalidEnvelope, ErrInvalidFormatTag,
// ErrUnsupportedAudioFormat, ErrUnsupportedBitDepth, ErrShortFormatChunk,
// ErrMissingFormatChunk, ErrUnexpectedEOF or ErrIO. Use errors.Is to match
// them, details are wrapped around the sentinel.
//
// Once a source exists, read failures are not errors: they end the sample
// sequence the same way a clean end of input does. StreamingSource.Err tells
// the two apart for callers that care.
//
// # Writing WAV Files
//
// WriteWAV16 writes a complete file to any io.Writer when all samples are in
// memory. Encode streams an audio.Source to an io.WriteSeeker through
// github.com/go-audio/wav and patches the sizes when done.
package wav
