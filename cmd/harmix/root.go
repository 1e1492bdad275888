// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/harmix"
	"github.com/ik5/harmix/config"
	"github.com/ik5/harmix/internal/logger"
	"github.com/ik5/harmix/mixer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "harmix",
	Short: "Mix a vocal recording with its harmony tracks",
	Long: `Harmix loads an original vocal recording and any number of harmony
tracks, lets you audition them together with per-track gain and mute,
and renders the result into a single 16-bit WAV file.

The first track given is the original; the rest are harmonies. Tracks may
be local paths, file:// URLs or http(s) URLs in WAV, AIFF, MP3, Ogg Vorbis
or FLAC.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./harmix.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if verbose {
		viper.Set("logging.level", "debug")
	}
}

// loadConfig loads and validates configuration, then sets up logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	return cfg, nil
}

// palette colours tracks in order; the original comes first.
var palette = []string{"#E8A33D", "#4FB0C6", "#9B6DD6", "#6CC24A", "#E05A6B", "#D6C95C"}

// sources names each reference and gives it a display colour.
func sources(refs []string) []mixer.Source {
	out := make([]mixer.Source, len(refs))
	for i, ref := range refs {
		label := filepath.Base(ref)
		if i == 0 {
			label = "original: " + label
		}
		out[i] = mixer.Source{Label: label, Color: palette[i%len(palette)], Ref: ref}
	}
	return out
}

func options(cfg *config.Config) harmix.Options {
	opts := harmix.DefaultOptions()
	opts.Gain = cfg.Export.Gain
	opts.Channels = cfg.Export.Channels
	opts.Logger = logger.WithComponent("loader")
	return opts
}

// trackFlags adds the per-track level flags shared by play and mix.
func trackFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("gain", nil, "track gain as index=value, e.g. --gain 1=0.4 (repeatable)")
	cmd.Flags().IntSlice("mute", nil, "indexes of tracks to mute")
}

// applyTrackFlags pushes --gain and --mute onto session.
func applyTrackFlags(cmd *cobra.Command, session *mixer.Session) error {
	gains, err := cmd.Flags().GetStringArray("gain")
	if err != nil {
		return err
	}
	for _, g := range gains {
		i, v, err := parseGain(g)
		if err != nil {
			return err
		}
		if err := session.SetGain(i, v); err != nil {
			return fmt.Errorf("--gain %s: %w", g, err)
		}
	}

	mutes, err := cmd.Flags().GetIntSlice("mute")
	if err != nil {
		return err
	}
	for _, i := range mutes {
		if err := session.SetMute(i, true); err != nil {
			return fmt.Errorf("--mute %d: %w", i, err)
		}
	}

	return nil
}

// parseGain splits "index=value".
func parseGain(s string) (int, float64, error) {
	idx, val, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("--gain %q: want index=value", s)
	}

	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return 0, 0, fmt.Errorf("--gain %q: bad index: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("--gain %q: bad value: %w", s, err)
	}

	return i, v, nil
}
