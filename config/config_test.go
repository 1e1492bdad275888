// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir())

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Waveform.Buckets != 100 {
		t.Errorf("Waveform.Buckets = %d, want 100", cfg.Waveform.Buckets)
	}
	if cfg.Export.Gain != 0.75 {
		t.Errorf("Export.Gain = %v, want 0.75", cfg.Export.Gain)
	}
	if cfg.Export.Channels != 2 {
		t.Errorf("Export.Channels = %d, want 2", cfg.Export.Channels)
	}
	if cfg.Export.GainSource != GainFixed {
		t.Errorf("Export.GainSource = %q, want %q", cfg.Export.GainSource, GainFixed)
	}
	if cfg.Export.Output != "harmonized-mix.wav" {
		t.Errorf("Export.Output = %q, want harmonized-mix.wav", cfg.Export.Output)
	}
	if cfg.Playback.Buffer != 100*time.Millisecond {
		t.Errorf("Playback.Buffer = %v, want 100ms", cfg.Playback.Buffer)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("export:\n  gain: 0.5\n  gain_source: live\nwaveform:\n  buckets: 40\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Export.Gain != 0.5 || cfg.Export.GainSource != GainLive || cfg.Waveform.Buckets != 40 {
		t.Errorf("Load() = %+v, want file values", cfg)
	}
	// untouched keys keep defaults
	if cfg.Export.Channels != 2 {
		t.Errorf("Export.Channels = %d, want 2", cfg.Export.Channels)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(v); err == nil {
		t.Error("Load() with a missing explicit file succeeded")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HARMIX_EXPORT_CHANNELS", "1")
	t.Setenv("HARMIX_LOGGING_LEVEL", "debug")

	v := viper.New()
	v.AddConfigPath(t.TempDir())

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Export.Channels != 1 {
		t.Errorf("Export.Channels = %d, want 1", cfg.Export.Channels)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Waveform: WaveformConfig{Buckets: 100},
			Export:   ExportConfig{Gain: 0.75, Channels: 2, GainSource: GainFixed, Output: "mix.wav"},
			Playback: PlaybackConfig{Buffer: time.Second / 10},
			Logging:  LoggingConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero buckets", func(c *Config) { c.Waveform.Buckets = 0 }, "waveform.buckets"},
		{"gain above one", func(c *Config) { c.Export.Gain = 1.5 }, "export.gain"},
		{"negative gain", func(c *Config) { c.Export.Gain = -0.1 }, "export.gain"},
		{"no channels", func(c *Config) { c.Export.Channels = 0 }, "export.channels"},
		{"bad gain source", func(c *Config) { c.Export.GainSource = "auto" }, "export.gain_source"},
		{"empty output", func(c *Config) { c.Export.Output = "" }, "export.output"},
		{"zero buffer", func(c *Config) { c.Playback.Buffer = 0 }, "playback.buffer"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *Error", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Validate() field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}
