// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis, converting the decoder's float samples to
// 16-bit.
package vorbis
