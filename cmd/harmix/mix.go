// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ik5/harmix"
	"github.com/ik5/harmix/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mixCmd = &cobra.Command{
	Use:   "mix <original> [harmony...]",
	Short: "Render all tracks into one WAV file",
	Long: `Render the original and every harmony into a single 16-bit PCM WAV file.

With export.gain_source "fixed" every track is rendered at export.gain.
With "live" each track is rendered at the level set by --gain and --mute.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMix,
}

func init() {
	rootCmd.AddCommand(mixCmd)

	mixCmd.Flags().StringP("output", "o", harmix.DefaultOutput, "output WAV file")
	mixCmd.Flags().Float64("export-gain", 0.75, "gain applied to every track in fixed mode")
	mixCmd.Flags().Int("channels", 2, "output channel count")
	mixCmd.Flags().String("gain-source", config.GainFixed, "export gain source (fixed, live)")
	trackFlags(mixCmd)

	viper.BindPFlag("export.output", mixCmd.Flags().Lookup("output"))
	viper.BindPFlag("export.gain", mixCmd.Flags().Lookup("export-gain"))
	viper.BindPFlag("export.channels", mixCmd.Flags().Lookup("channels"))
	viper.BindPFlag("export.gain_source", mixCmd.Flags().Lookup("gain-source"))
}

func runMix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := mixdown(cmd, cfg, args)
	if err != nil {
		return err
	}

	if err := harmix.WriteFile(afero.NewOsFs(), cfg.Export.Output, data); err != nil {
		return err
	}

	slog.Info("Mix written", slog.String("file", cfg.Export.Output), slog.Int("bytes", len(data)))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.Export.Output)
	return nil
}

func mixdown(cmd *cobra.Command, cfg *config.Config, refs []string) ([]byte, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := options(cfg)

	if cfg.Export.GainSource == config.GainFixed {
		return harmix.Mixdown(ctx, refs, opts)
	}

	session, err := harmix.Load(ctx, sources(refs), opts)
	if session != nil {
		defer session.Close()
	}
	if err != nil {
		return nil, err
	}

	if err := applyTrackFlags(cmd, session); err != nil {
		return nil, err
	}

	inputs, err := session.MixInputs()
	if err != nil {
		return nil, err
	}
	return harmix.Export(ctx, inputs, cfg.Export.Channels)
}
