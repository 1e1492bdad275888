// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/fetch"
	"github.com/ik5/harmix/formats"
	"github.com/ik5/harmix/internal/logger"
	"github.com/sourcegraph/conc"
	"go.uber.org/multierr"
)

// Source names one track to load.
type Source struct {
	Label string
	Color string
	// Ref is a path or URL understood by the Loader's Fetcher.
	Ref string
}

// Loader fetches and decodes tracks in parallel and builds a Session.
type Loader struct {
	Fetcher fetch.Fetcher
	// Registry defaults to formats.Default().
	Registry *audio.Registry
	Logger   *slog.Logger
	Options  []Option
}

// Load decodes every source concurrently. One track failing never cancels
// the others; Load waits for all of them. The returned session holds a
// failed Track for each failure and the error combines their
// *audio.DecodeError values. A sample-rate mismatch between loaded tracks
// returns no session.
func (l Loader) Load(ctx context.Context, sources []Source) (*Session, error) {
	if l.Fetcher == nil {
		return nil, ErrNoFetcher
	}

	log := l.Logger
	if log == nil {
		log = logger.WithComponent("loader")
	}

	tracks := make([]*Track, len(sources))
	var wg conc.WaitGroup
	for i, src := range sources {
		wg.Go(func() {
			tracks[i] = l.loadOne(ctx, i, src)
		})
	}
	wg.Wait()

	var errs error
	for i, t := range tracks {
		if t.Err != nil {
			log.Warn("track failed to load", "index", i, "label", t.Label, "error", t.Err)
			errs = multierr.Append(errs, t.Err)
		}
	}

	session, err := NewSession(tracks, l.Options...)
	if err != nil {
		return nil, multierr.Append(errs, err)
	}

	return session, errs
}

func (l Loader) loadOne(ctx context.Context, i int, src Source) *Track {
	data, err := l.Fetcher.Fetch(ctx, src.Ref)
	if err != nil {
		t := FailedTrack(src.Label, &audio.DecodeError{
			Index: i,
			Label: src.Label,
			Err:   fmt.Errorf("fetching %s: %w", src.Ref, err),
		})
		t.Color = src.Color
		return t
	}

	buf, err := formats.Decode(l.Registry, data)
	if err != nil {
		if de, ok := err.(*audio.DecodeError); ok {
			de.Index = i
			de.Label = src.Label
		}
		t := FailedTrack(src.Label, err)
		t.Color = src.Color
		return t
	}

	t := NewTrack(src.Label, buf)
	t.Color = src.Color
	return t
}
