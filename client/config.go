// SPDX-License-Identifier: EPL-2.0

package client

import (
	"flag"
	"time"

	"github.com/zachfi/zkit/pkg/util"
)

const (
	// DefaultEndpoint is where a local TTS server listens out of the box.
	DefaultEndpoint = "http://127.0.0.1:7851"

	defaultTimeout       = 10 * time.Second
	defaultReadyTimeout  = 30 * time.Second
	defaultReadyInterval = 250 * time.Millisecond
	defaultRequestRate   = 2.0
	defaultRequestBurst  = 1
	defaultBufferSize    = 32 * 1024
	defaultVoice         = "female_01.wav"
	defaultLanguage      = "en"
)

type Config struct {
	Endpoint      string        `yaml:"endpoint,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty"`        // readiness probes and response headers
	ReadyTimeout  time.Duration `yaml:"ready-timeout,omitempty"`  // total time WaitReady keeps probing
	ReadyInterval time.Duration `yaml:"ready-interval,omitempty"` // first delay between probes, grows exponentially
	RequestRate   float64       `yaml:"request-rate,omitempty"`   // generation requests per second
	RequestBurst  int           `yaml:"request-burst,omitempty"`
	BufferSize    int           `yaml:"buffer-size,omitempty"` // read buffer in front of the response body
	Voice         string        `yaml:"voice,omitempty"`
	Language      string        `yaml:"language,omitempty"`
}

func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Endpoint, util.PrefixConfig(prefix, "endpoint"), DefaultEndpoint, "Base URL of the TTS server.")
	f.DurationVar(&cfg.Timeout, util.PrefixConfig(prefix, "timeout"), defaultTimeout,
		"Timeout for readiness probes and for the server to start answering a generation request. The audio body itself is not bounded.")
	f.DurationVar(&cfg.ReadyTimeout, util.PrefixConfig(prefix, "ready-timeout"), defaultReadyTimeout, "How long to wait for the server to report ready.")
	f.DurationVar(&cfg.ReadyInterval, util.PrefixConfig(prefix, "ready-interval"), defaultReadyInterval, "Initial delay between readiness probes.")
	f.Float64Var(&cfg.RequestRate, util.PrefixConfig(prefix, "request-rate"), defaultRequestRate, "Maximum generation requests per second.")
	f.IntVar(&cfg.RequestBurst, util.PrefixConfig(prefix, "request-burst"), defaultRequestBurst, "Generation requests allowed in a burst.")
	f.IntVar(&cfg.BufferSize, util.PrefixConfig(prefix, "buffer-size"), defaultBufferSize, "Bytes buffered in front of the streamed response body.")
	f.StringVar(&cfg.Voice, util.PrefixConfig(prefix, "voice"), defaultVoice, "Voice sample the server should speak with.")
	f.StringVar(&cfg.Language, util.PrefixConfig(prefix, "language"), defaultLanguage, "Language of the generated speech.")
}

// RegisterFlags lets flagext.DefaultValues fill a Config with its defaults.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsAndApplyDefaults("", f)
}
