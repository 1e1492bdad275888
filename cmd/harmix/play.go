// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/harmix"
	"github.com/ik5/harmix/mixer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var playCmd = &cobra.Command{
	Use:   "play <original> [harmony...]",
	Short: "Audition all tracks together through the speaker",
	Long: `Play the original and every harmony in sync. Playback ends when the
longest track finishes or on Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Duration("buffer", mixer.DefaultBuffer, "speaker buffer length")
	trackFlags(playCmd)

	viper.BindPFlag("playback.buffer", playCmd.Flags().Lookup("buffer"))
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mixer.SystemSpeaker().SetBuffer(cfg.Playback.Buffer)

	session, err := harmix.Load(ctx, sources(args), options(cfg))
	if session != nil {
		defer session.Close()
	}
	if err != nil {
		return err
	}

	if err := applyTrackFlags(cmd, session); err != nil {
		return err
	}

	if err := session.Play(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, t := range session.Tracks() {
		amp, _ := session.Amplitude(i)
		fmt.Fprintf(out, "[%d] %s  gain %.2f\n", i, t.Label, amp)
	}
	fmt.Fprintln(out, "Playing, Ctrl-C to stop")

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			session.Stop()
			slog.Info("Playback interrupted")
			return nil
		case <-ticker.C:
			if !session.Playing() {
				slog.Debug("Playback finished")
				return nil
			}
		}
	}
}
