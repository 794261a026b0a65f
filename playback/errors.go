// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrDevice              = errors.New("audio device unavailable")
	ErrUnsupportedChannels = errors.New("output supports 1 or 2 channels")
	ErrInvalidSampleRate   = errors.New("output sample rate must be positive")
	ErrPlayback            = errors.New("playback failed")
)
