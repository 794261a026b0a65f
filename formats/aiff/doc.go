// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files with github.com/go-audio/aiff.
//
// go-audio needs an io.ReadSeeker. Any other reader is read fully into
// memory before decoding starts, so unlike the wav package this decoder is
// not suited to endless network streams.
//
// # Errors
//
//   - ErrNotAiffFile: the FORM/AIFF header is missing
//   - ErrOnlyPCM16bitSupported: the COMM chunk declares another bit depth
//   - ErrUnsupportedAiffLayout: no usable channel count
package aiff
