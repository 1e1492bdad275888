// SPDX-License-Identifier: EPL-2.0

package harmix

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/fetch"
	"github.com/ik5/harmix/formats/wav"
	"github.com/ik5/harmix/internal/logger"
	"github.com/ik5/harmix/mixer"
	"github.com/ik5/harmix/render"
	"github.com/spf13/afero"
)

// DefaultOutput is the file name a mixdown is saved under.
const DefaultOutput = "harmonized-mix.wav"

// Options configures Mixdown and Load. Start from DefaultOptions: the zero
// value has no Fetcher, which fails with mixer.ErrNoFetcher, and a Gain of
// 0, which renders silence.
type Options struct {
	Fetcher fetch.Fetcher
	// Registry defaults to formats.Default().
	Registry *audio.Registry
	// Gain applied to every track, in [0, 1].
	Gain float64
	// Channels of the rendered mix; 0 means render.DefaultChannels.
	Channels int
	Logger   *slog.Logger
}

// DefaultOptions reads tracks from the local filesystem and over HTTP at
// the default export gain.
func DefaultOptions() Options {
	return Options{
		Fetcher: fetch.NewRouter(afero.NewOsFs(), nil),
		Gain:    render.DefaultGain,
	}
}

// Load fetches and decodes sources into a session, using the fetcher and
// registry from opts.
func Load(ctx context.Context, sources []mixer.Source, opts Options, sessionOpts ...mixer.Option) (*mixer.Session, error) {
	loader := mixer.Loader{
		Fetcher:  opts.Fetcher,
		Registry: opts.Registry,
		Logger:   opts.Logger,
		Options:  sessionOpts,
	}
	return loader.Load(ctx, sources)
}

// Mixdown loads every reference, renders them at opts.Gain and returns the
// mix encoded as 16-bit PCM WAV. Any track failing to load fails the whole
// mixdown.
func Mixdown(ctx context.Context, refs []string, opts Options) ([]byte, error) {
	sources := make([]mixer.Source, len(refs))
	for i, ref := range refs {
		sources[i] = mixer.Source{Label: filepath.Base(ref), Ref: ref}
	}

	session, err := Load(ctx, sources, opts)
	if session != nil {
		defer session.Close()
	}
	if err != nil {
		return nil, err
	}

	tracks := session.Tracks()
	buffers := make([]*audio.SampleBuffer, len(tracks))
	for i := range tracks {
		buffers[i] = tracks[i].Buffer
	}

	return Export(ctx, render.Fixed(buffers, opts.Gain), opts.Channels)
}

// Export renders inputs and encodes the result as WAV.
func Export(ctx context.Context, inputs []render.Input, channels int) ([]byte, error) {
	mix, err := render.Render(ctx, inputs, render.Options{Channels: channels})
	if err != nil {
		return nil, fmt.Errorf("rendering mix: %w", err)
	}

	data, err := wav.Encode(mix)
	if err != nil {
		return nil, fmt.Errorf("encoding mix: %w", err)
	}

	return data, nil
}

// WriteFile stores data at path through a temporary file in the same
// directory, so a failed write never leaves a partial file behind.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := fs.Rename(tmp.Name(), path); err != nil {
		fs.Remove(tmp.Name())
		return fmt.Errorf("renaming into %s: %w", path, err)
	}

	logger.WithComponent("export").Debug("mix written", "path", path, "bytes", len(data))

	return nil
}
