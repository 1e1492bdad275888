// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ik5/harmix"
	"github.com/ik5/harmix/mixer"
	"github.com/ik5/harmix/waveform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var waveformCmd = &cobra.Command{
	Use:   "waveform <ref>...",
	Short: "Print the amplitude outline of each track",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWaveform,
}

func init() {
	rootCmd.AddCommand(waveformCmd)

	waveformCmd.Flags().IntP("buckets", "b", waveform.DefaultBuckets, "number of bars per track")
	viper.BindPFlag("waveform.buckets", waveformCmd.Flags().Lookup("buckets"))
}

func runWaveform(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// A failed track still gets a line, so the others are shown.
	session, err := harmix.Load(ctx, sources(args), options(cfg))
	if session == nil {
		return err
	}
	defer session.Close()

	for _, t := range session.Tracks() {
		if rerr := printEnvelope(cmd.OutOrStdout(), t, cfg.Waveform.Buckets); rerr != nil {
			return rerr
		}
	}

	return err
}

var levels = []rune("▁▂▃▄▅▆▇█")

// bars draws one block per bucket, its height following the level.
func bars(env waveform.Envelope) string {
	var b strings.Builder
	for _, v := range env {
		idx := int(v * float32(len(levels)-1))
		idx = min(max(idx, 0), len(levels)-1)
		b.WriteRune(levels[idx])
	}
	return b.String()
}

func printEnvelope(w io.Writer, t mixer.Track, buckets int) error {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Color))

	if !t.Ready() {
		_, err := fmt.Fprintf(w, "%s\n  %s\n", label.Render(t.Label),
			lipgloss.NewStyle().Faint(true).Render(t.Err.Error()))
		return err
	}

	env, err := waveform.SummarizeBuffer(t.Buffer, buckets)
	if err != nil {
		return err
	}

	info := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%d Hz, %d ch, %s",
		t.Buffer.SampleRate, t.Buffer.NumChannels(), t.Buffer.Duration()))
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render(bars(env))

	_, err = fmt.Fprintf(w, "%s %s\n  %s\n", label.Render(t.Label), info, bar)
	return err
}
