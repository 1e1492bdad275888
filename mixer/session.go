// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/internal/logger"
	"github.com/ik5/harmix/render"
)

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock used for auto-stop.
func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

// WithOutput replaces the system speaker.
func WithOutput(o Output) Option { return func(s *Session) { s.out = o } }

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.log = l } }

// Session auditions a set of tracks together. The per-track gain and mute
// flags are the source of truth; while playing, each change is pushed to the
// track's live gain node.
//
// All tracks start on the same output sample, and playback stops by itself
// when the longest track ends. Sessions share the Output; Close only
// detaches the session's own streamers.
type Session struct {
	mu sync.Mutex

	tracks []*Track
	rate   int

	out      Output
	outReady bool
	clock    Clock
	log      *slog.Logger

	playing bool
	ctrl    *beep.Ctrl
	nodes   []*effects.Gain
	timer   Timer
	// gen invalidates auto-stop callbacks scheduled by earlier plays
	gen    uint64
	closed bool
}

// NewSession builds a session over tracks. The output sample rate is the
// first loaded track's; a loaded track at another rate is an error, as is
// a loaded buffer that fails Validate.
func NewSession(tracks []*Track, opts ...Option) (*Session, error) {
	buffers := make([]*audio.SampleBuffer, len(tracks))
	for i, t := range tracks {
		if !t.Ready() {
			continue
		}
		if err := t.Buffer.Validate(); err != nil {
			return nil, fmt.Errorf("track %d (%s): %w", i, t.Label, err)
		}
		buffers[i] = t.Buffer
	}
	if err := audio.CheckRates(buffers); err != nil {
		return nil, err
	}

	s := &Session{
		tracks: tracks,
		clock:  realClock{},
	}
	for _, b := range buffers {
		if b != nil {
			s.rate = b.SampleRate
			break
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.out == nil {
		s.out = SystemSpeaker()
	}
	if s.log == nil {
		s.log = logger.WithComponent("mixer")
	}

	return s, nil
}

// Ready reports whether every track loaded and there is at least one.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readyLocked()
}

func (s *Session) readyLocked() bool {
	if len(s.tracks) == 0 {
		return false
	}
	for _, t := range s.tracks {
		if !t.Ready() {
			return false
		}
	}
	return true
}

// SampleRate is the rate the output device is opened at.
func (s *Session) SampleRate() int { return s.rate }

// Playing reports whether tracks are currently audible.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playing
}

// Tracks returns a snapshot of the tracks in order.
func (s *Session) Tracks() []Track {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Track, len(s.tracks))
	for i, t := range s.tracks {
		out[i] = *t
	}
	return out
}

// Amplitude returns the level track i is heard at.
func (s *Session) Amplitude(i int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.trackLocked(i)
	if err != nil {
		return 0, err
	}
	return t.Amplitude(), nil
}

// Play restarts every track from its first sample. Any current playback is
// stopped first.
func (s *Session) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if !s.readyLocked() {
		return fmt.Errorf("%w: cannot play", audio.ErrNotReady)
	}

	s.stopLocked()

	if !s.outReady {
		if err := s.out.Init(s.rate); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrResource, err)
		}
		s.outReady = true
	}

	// Every track joins one mixer before it reaches the device, so they
	// share a start sample.
	mix := &beep.Mixer{}
	nodes := make([]*effects.Gain, len(s.tracks))
	var longest time.Duration
	for i, t := range s.tracks {
		nodes[i] = &effects.Gain{
			Streamer: newBufferStreamer(t.Buffer),
			Gain:     t.Amplitude() - 1,
		}
		mix.Add(nodes[i])
		longest = max(longest, t.Buffer.Duration())
	}
	// The ctrl is this session's handle on the shared device.
	ctrl := &beep.Ctrl{Streamer: mix}
	s.out.Play(ctrl)

	s.ctrl = ctrl
	s.nodes = nodes
	s.playing = true
	s.gen++
	gen := s.gen
	s.timer = s.clock.AfterFunc(longest, func() { s.autoStop(gen) })

	s.log.Debug("playback started", "tracks", len(s.tracks), "duration", longest)

	return nil
}

// Stop silences every track. It is safe to call at any time, any number of
// times.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

func (s *Session) stopLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.playing {
		return
	}

	// A ctrl without a streamer reports itself drained and the device
	// drops it; other sessions on the device keep playing.
	s.out.Lock()
	s.ctrl.Streamer = nil
	s.out.Unlock()

	s.ctrl = nil
	s.nodes = nil
	s.playing = false

	s.log.Debug("playback stopped")
}

func (s *Session) autoStop(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || !s.playing {
		return
	}

	s.log.Debug("longest track finished")
	s.stopLocked()
}

// SetGain sets track i's level to v in [0, 1]. A muted track stays silent
// and is heard at v once unmuted.
func (s *Session) SetGain(i int, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.editableLocked(i)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: gain %v", audio.ErrRange, v)
	}

	t.gain = v
	s.applyLocked(i)

	return nil
}

// SetMute mutes or unmutes track i without touching its gain.
func (s *Session) SetMute(i int, muted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.editableLocked(i)
	if err != nil {
		return err
	}

	t.muted = muted
	s.applyLocked(i)

	return nil
}

// ToggleMute flips track i's mute flag and returns the new value.
func (s *Session) ToggleMute(i int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.editableLocked(i)
	if err != nil {
		return false, err
	}

	t.muted = !t.muted
	s.applyLocked(i)

	return t.muted, nil
}

// MixInputs returns render inputs at the tracks' current amplitudes.
func (s *Session) MixInputs() ([]render.Input, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	if !s.readyLocked() {
		return nil, fmt.Errorf("%w: cannot export", audio.ErrNotReady)
	}

	inputs := make([]render.Input, len(s.tracks))
	for i, t := range s.tracks {
		inputs[i] = render.Input{Buffer: t.Buffer, Gain: t.Amplitude()}
	}
	return inputs, nil
}

// Close stops playback. The shared output stays open for other sessions.
// Every later call fails with ErrClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.stopLocked()
	s.closed = true

	return nil
}

func (s *Session) trackLocked(i int) (*Track, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= len(s.tracks) {
		return nil, fmt.Errorf("%w: track %d of %d", audio.ErrRange, i, len(s.tracks))
	}
	return s.tracks[i], nil
}

func (s *Session) editableLocked(i int) (*Track, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !s.readyLocked() {
		return nil, fmt.Errorf("%w: tracks still loading or failed", audio.ErrNotReady)
	}
	return s.trackLocked(i)
}

// applyLocked pushes track i's amplitude to its live gain node.
func (s *Session) applyLocked(i int) {
	if !s.playing {
		return
	}

	s.out.Lock()
	s.nodes[i].Gain = s.tracks[i].Amplitude() - 1
	s.out.Unlock()
}
