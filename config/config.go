// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Export gain sources.
const (
	// GainFixed renders every track at Export.Gain.
	GainFixed = "fixed"
	// GainLive renders every track at its current session amplitude.
	GainLive = "live"
)

// Config holds all configuration for harmix
type Config struct {
	Waveform WaveformConfig `mapstructure:"waveform"`
	Export   ExportConfig   `mapstructure:"export"`
	Playback PlaybackConfig `mapstructure:"playback"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// WaveformConfig controls the amplitude envelope shown per track
type WaveformConfig struct {
	Buckets int `mapstructure:"buckets"`
}

// ExportConfig controls the offline mixdown
type ExportConfig struct {
	Gain       float64 `mapstructure:"gain"`
	Channels   int     `mapstructure:"channels"`
	GainSource string  `mapstructure:"gain_source"` // fixed or live
	Output     string  `mapstructure:"output"`
}

// PlaybackConfig controls the audio device
type PlaybackConfig struct {
	Buffer time.Duration `mapstructure:"buffer"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("waveform.buckets", 100)
	v.SetDefault("export.gain", 0.75)
	v.SetDefault("export.channels", 2)
	v.SetDefault("export.gain_source", GainFixed)
	v.SetDefault("export.output", "harmonized-mix.wav")
	v.SetDefault("playback.buffer", "100ms")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Load reads configuration into v from defaults, an optional harmix.yaml
// and HARMIX_ environment variables, then unmarshals it. A config file set
// explicitly on v with SetConfigFile must exist.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetConfigName("harmix")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.harmix")
	v.AddConfigPath("/etc/harmix")

	v.SetEnvPrefix("HARMIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Debug("No config file found, using defaults and environment variables")
	} else {
		slog.Debug("Using config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Waveform.Buckets < 1 {
		return &Error{Field: "waveform.buckets", Message: "must be at least 1"}
	}
	if c.Export.Gain < 0 || c.Export.Gain > 1 {
		return &Error{Field: "export.gain", Message: "must be within [0, 1]"}
	}
	if c.Export.Channels < 1 {
		return &Error{Field: "export.channels", Message: "must be at least 1"}
	}
	switch c.Export.GainSource {
	case GainFixed, GainLive:
	default:
		return &Error{Field: "export.gain_source", Message: "must be fixed or live"}
	}
	if c.Export.Output == "" {
		return &Error{Field: "export.output", Message: "output file name is required"}
	}
	if c.Playback.Buffer <= 0 {
		return &Error{Field: "playback.buffer", Message: "must be positive"}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return &Error{Field: "logging.format", Message: "must be text or json"}
	}
	return nil
}

// Error represents a configuration validation error
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}
