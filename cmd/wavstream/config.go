// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/ik5/wavstream/client"
	"github.com/ik5/wavstream/playback"
)

type Config struct {
	LogLevel    string          `yaml:"log-level,omitempty"`
	OutputDir   string          `yaml:"output-dir,omitempty"`
	MetricsAddr string          `yaml:"metrics-addr,omitempty"`
	SkipReady   bool            `yaml:"skip-ready,omitempty"`
	Client      client.Config   `yaml:"client,omitempty"`
	Playback    playback.Config `yaml:"playback,omitempty"`
}

// LoadConfig overlays the YAML file at file onto config. Keys missing from
// the file keep their current value.
func LoadConfig(file string, config *Config) error {
	filename, _ := filepath.Abs(file)

	err := loadYamlFile(filename, config)
	if err != nil {
		return errors.Wrap(err, "failed to load yaml file")
	}

	return nil
}

// loadYamlFile unmarshals a YAML file into d, rejecting unknown keys.
func loadYamlFile(filename string, d any) error {
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return yaml.UnmarshalStrict(yamlFile, d)
}

func (c *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&c.LogLevel, "log.level", "info", "Log level: debug, info, warn or error.")
	f.StringVar(&c.OutputDir, "output.dir", "", "Write each utterance as a numbered WAV file in this directory instead of playing it.")
	f.StringVar(&c.MetricsAddr, "metrics.addr", "", "Serve Prometheus metrics on this address, e.g. :9100. Disabled when empty.")
	f.BoolVar(&c.SkipReady, "skip-ready", false, "Do not wait for the server to report ready before reading input.")

	c.Client.RegisterFlagsAndApplyDefaults("client", f)
	c.Playback.RegisterFlagsAndApplyDefaults("playback", f)
}
