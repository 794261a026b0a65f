// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"time"

	"github.com/ik5/wavstream/audio"
)

// upmix repeats every sample of a mono source on each output channel.
type upmix struct {
	src      audio.Source
	channels int
	v        int16
	left     int
}

func (u *upmix) SampleRate() int { return u.src.SampleRate() }
func (u *upmix) Channels() int   { return u.channels }

func (u *upmix) FrameLen() (int, bool) { return 0, false }

func (u *upmix) TotalDuration() (time.Duration, bool) {
	return u.src.TotalDuration()
}

func (u *upmix) Next() (int16, bool) {
	if u.left == 0 {
		v, ok := u.src.Next()
		if !ok {
			return 0, false
		}
		u.v, u.left = v, u.channels
	}
	u.left--

	return u.v, true
}

func (u *upmix) Close() error { return u.src.Close() }
