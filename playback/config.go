// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"flag"
	"time"

	"github.com/zachfi/zkit/pkg/util"
)

const (
	defaultSampleRate   = 24000
	defaultChannels     = 1
	defaultBufferSize   = 100 * time.Millisecond
	defaultPollInterval = 10 * time.Millisecond
)

type Config struct {
	SampleRate int           `yaml:"sample-rate,omitempty"`
	Channels   int           `yaml:"channels,omitempty"`
	BufferSize time.Duration `yaml:"buffer-size,omitempty"` // audio queued in the device ahead of playback
}

func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.SampleRate, util.PrefixConfig(prefix, "sample-rate"), defaultSampleRate,
		"Output device sample rate. Sources at other rates are resampled.")
	f.IntVar(&cfg.Channels, util.PrefixConfig(prefix, "channels"), defaultChannels, "Output channels, 1 or 2.")
	f.DurationVar(&cfg.BufferSize, util.PrefixConfig(prefix, "buffer-size"), defaultBufferSize,
		"Audio buffered by the device. Larger values survive slow networks better but delay the start.")
}

// RegisterFlags lets flagext.DefaultValues fill a Config with its defaults.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsAndApplyDefaults("", f)
}

// bufferBytes converts BufferSize to bytes of 16-bit PCM.
func (cfg Config) bufferBytes() int {
	frames := int(cfg.BufferSize * time.Duration(cfg.SampleRate) / time.Second)
	return frames * cfg.Channels * 2
}
