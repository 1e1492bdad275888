// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/render"
)

// Track is one decoded recording in a session: the original vocal or a
// harmony. A Track whose decode failed keeps its Err and has no Buffer.
type Track struct {
	Label string
	// Color is a hex colour used only for display.
	Color  string
	Buffer *audio.SampleBuffer
	Err    error

	gain  float64
	muted bool
}

// NewTrack wraps a decoded buffer at the default gain, unmuted.
func NewTrack(label string, buf *audio.SampleBuffer) *Track {
	return &Track{Label: label, Buffer: buf, gain: render.DefaultGain}
}

// FailedTrack records a track that could not be loaded.
func FailedTrack(label string, err error) *Track {
	return &Track{Label: label, Err: err, gain: render.DefaultGain}
}

// Gain is the stored level in [0, 1], kept while muted.
func (t *Track) Gain() float64 { return t.gain }

// Muted reports whether the track is silenced.
func (t *Track) Muted() bool { return t.muted }

// Ready reports whether the track decoded successfully.
func (t *Track) Ready() bool { return t.Err == nil && t.Buffer != nil }

// Amplitude is the level the track is heard at: 0 when muted, its gain
// otherwise.
func (t *Track) Amplitude() float64 {
	if t.muted {
		return 0
	}
	return t.gain
}
