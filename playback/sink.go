// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/ik5/wavstream/audio"
)

// player is the part of oto.Player a Sink drives.
type player interface {
	Play()
	IsPlaying() bool
	Err() error
	Close() error
}

type playerFactory interface {
	NewPlayer(r io.Reader) player
}

type otoContext struct {
	ctx *oto.Context
}

func (c otoContext) NewPlayer(r io.Reader) player {
	return c.ctx.NewPlayer(r)
}

// Sink plays sources on an output device with a fixed format. Sources in any
// other format are converted on the fly.
type Sink struct {
	cfg          Config
	players      playerFactory
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewSink opens the default output device. The underlying oto context can be
// created once per process, so a program should hold a single Sink.
func NewSink(cfg Config, logger *slog.Logger) (*Sink, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(cfg.SampleRate, cfg.Channels, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDevice, err)
	}
	<-ready

	return newSink(cfg, otoContext{ctx: ctx}, logger), nil
}

func newSink(cfg Config, players playerFactory, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Sink{
		cfg:          cfg,
		players:      players,
		pollInterval: defaultPollInterval,
		logger:       logger.With("module", "playback"),
	}
}

func (cfg Config) validate() error {
	if cfg.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if cfg.Channels != 1 && cfg.Channels != 2 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedChannels, cfg.Channels)
	}

	return nil
}

// Play blocks until src is exhausted and the device has played it, or ctx is
// done. It does not close src.
func (s *Sink) Play(ctx context.Context, src audio.Source) error {
	adapted, err := s.adapt(src)
	if err != nil {
		return err
	}

	p := s.players.NewPlayer(audio.NewPCMReader(adapted))
	if bs, ok := p.(interface{ SetBufferSize(int) }); ok && s.cfg.BufferSize > 0 {
		bs.SetBufferSize(s.cfg.bufferBytes())
	}

	s.logger.Debug("playing",
		"source_rate", src.SampleRate(),
		"source_channels", src.Channels(),
	)

	p.Play()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Close()
			return fmt.Errorf("%w", ctx.Err())
		case <-ticker.C:
		}
	}

	if err := p.Err(); err != nil {
		p.Close()
		return fmt.Errorf("%w: %w", ErrPlayback, err)
	}

	if err := p.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrPlayback, err)
	}

	return nil
}

// adapt converts src to the sink's channel count and sample rate. Resampling
// runs on as few channels as possible.
func (s *Sink) adapt(src audio.Source) (audio.Source, error) {
	out := src
	convert := out.Channels() != s.cfg.Channels

	if convert && out.Channels() > 1 {
		out = audio.NewMonoMixer(out)
	}

	if out.SampleRate() != s.cfg.SampleRate {
		r, err := audio.NewResampler(out, s.cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPlayback, err)
		}
		out = r
	}

	if convert && s.cfg.Channels > 1 {
		out = &upmix{src: out, channels: s.cfg.Channels}
	}

	return out, nil
}
