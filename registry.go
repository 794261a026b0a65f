// SPDX-License-Identifier: EPL-2.0

package wavstream

import (
	"github.com/ik5/wavstream/audio"
	"github.com/ik5/wavstream/formats/aiff"
	"github.com/ik5/wavstream/formats/mp3"
	"github.com/ik5/wavstream/formats/vorbis"
	"github.com/ik5/wavstream/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder under its
// format key: "wav", "mp3", "ogg" and "aiff".
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}
