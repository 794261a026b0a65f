// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/grafana/dskit/flagext"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/version"

	"github.com/ik5/wavstream/audio"
	"github.com/ik5/wavstream/client"
	"github.com/ik5/wavstream/formats/wav"
	"github.com/ik5/wavstream/playback"
)

const appName = "wavstream"

// Version is set via build flag -ldflags -X main.Version
var (
	Version  string
	Branch   string
	Revision string
)

func init() {
	version.Version = Version
	version.Branch = Branch
	version.Revision = Revision
	prometheus.MustRegister(version.NewCollector(appName))
}

type synthesizer interface {
	GenerateStream(ctx context.Context, text, voice, language string) (audio.Source, error)
}

type player interface {
	Play(ctx context.Context, src audio.Source) error
}

func main() {
	cfg, printVersion, err := loadConfig(os.Args[1:], flag.CommandLine)
	if err != nil {
		slog.Error("failed to load config file", "err", err)
		os.Exit(1)
	}

	if printVersion {
		fmt.Println(version.Print(appName))
		return
	}

	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Error("invalid log level", "level", cfg.LogLevel, "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("error running", "app", appName, "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "err", err)
			}
		}()
		defer srv.Close()
	}

	c, err := client.New(cfg.Client,
		client.WithLogger(logger),
		client.WithMetrics(client.NewMetrics(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		return err
	}

	if !cfg.SkipReady {
		if err := c.WaitReady(ctx); err != nil {
			return err
		}
	}

	var out player
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		out = &fileWriter{dir: cfg.OutputDir, logger: logger}
	} else {
		sink, err := playback.NewSink(cfg.Playback, logger)
		if err != nil {
			return err
		}
		out = sink
	}

	return loop(ctx, os.Stdin, os.Stdout, c, out, cfg.Client, logger)
}

// loop reads one utterance per line until "q", "exit", EOF or ctx is done.
func loop(ctx context.Context, in io.Reader, prompt io.Writer, syn synthesizer, out player, cfg client.Config, logger *slog.Logger) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(prompt, "Enter text to generate TTS (or type 'q' to quit): ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(prompt)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(prompt)
				return nil
			}
			line = strings.TrimSpace(l)
		}

		switch line {
		case "":
			continue
		case "q", "exit":
			fmt.Fprintln(prompt, "quitting...")
			return nil
		}

		if err := speak(ctx, syn, out, line, cfg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error("error generating speech", "err", err)
		}
	}
}

func speak(ctx context.Context, syn synthesizer, out player, text string, cfg client.Config) error {
	src, err := syn.GenerateStream(ctx, text, cfg.Voice, cfg.Language)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := out.Play(ctx, src); err != nil {
		return err
	}

	// the stream ends quietly on a dropped connection, report it here
	if s, ok := src.(interface{ Err() error }); ok && s.Err() != nil {
		return fmt.Errorf("stream cut short: %w", s.Err())
	}

	return nil
}

// fileWriter saves each source as tts_NNN.wav instead of playing it.
type fileWriter struct {
	dir    string
	n      int
	logger *slog.Logger
}

func (w *fileWriter) Play(_ context.Context, src audio.Source) error {
	w.n++
	name := filepath.Join(w.dir, fmt.Sprintf("tts_%03d.wav", w.n))

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	samples, err := wav.Encode(f, src)
	if err != nil {
		return err
	}

	w.logger.Info("wrote audio", "file", name, "samples", samples)

	return f.Close()
}

func loadConfig(args []string, fs *flag.FlagSet) (*Config, bool, error) {
	const (
		configFileOption = "config.file"
		versionOption    = "version"
	)

	var configFile string

	config := &Config{}

	// first get the config file
	pre := flag.NewFlagSet("", flag.ContinueOnError)
	pre.SetOutput(io.Discard)

	pre.StringVar(&configFile, configFileOption, "", "")

	// Parsing stops on the first unknown flag, so retry with the remaining
	// arguments until -config.file is found or nothing is left.
	for rest := args; len(rest) > 0; rest = rest[1:] {
		_ = pre.Parse(rest)
		if configFile != "" {
			break
		}
	}

	// load config defaults and register flags
	config.RegisterFlagsAndApplyDefaults("", fs)

	// overlay with config file if provided
	if configFile != "" {
		if err := LoadConfig(configFile, config); err != nil {
			return nil, false, err
		}
	}

	// overlay with cli
	printVersion := fs.Bool(versionOption, false, "Print version and exit.")
	flagext.IgnoredFlag(fs, configFileOption, "Configuration file to load")
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	return config, *printVersion, nil
}
