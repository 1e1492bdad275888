// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrNoChannels        = errors.New("buffer has no channels")
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrRaggedChannels    = errors.New("channels differ in length")
	ErrUnknownFormat     = errors.New("unknown audio format")
)

// Error kinds shared by the mixing, rendering and encoding packages.
var (
	// ErrDecode marks malformed, truncated or unsupported input bytes.
	ErrDecode = errors.New("decode failed")
	// ErrNotReady marks an operation attempted before the tracks it needs are loaded.
	ErrNotReady = errors.New("tracks not ready")
	// ErrRange marks a gain outside [0, 1] or a track index out of bounds.
	ErrRange = errors.New("value out of range")
	// ErrRateMismatch marks tracks with differing sample rates.
	ErrRateMismatch = errors.New("sample rate mismatch")
	// ErrResource marks a failure to acquire the audio output.
	ErrResource = errors.New("audio output unavailable")
)

// DecodeError reports the failure to decode one track.
type DecodeError struct {
	Index  int
	Label  string
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	name := e.Label
	if name == "" {
		name = fmt.Sprintf("#%d", e.Index)
	}
	if e.Format != "" {
		return fmt.Sprintf("decode track %s (%s): %v", name, e.Format, e.Err)
	}
	return fmt.Sprintf("decode track %s: %v", name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// RateMismatchError reports the first track whose sample rate differs from
// the reference (first) track.
type RateMismatchError struct {
	Index int
	Want  int
	Got   int
}

func (e *RateMismatchError) Error() string {
	return fmt.Sprintf("track %d: sample rate %d Hz, want %d Hz", e.Index, e.Got, e.Want)
}

func (e *RateMismatchError) Is(target error) bool { return target == ErrRateMismatch }

// CheckRates returns a RateMismatchError for the first buffer whose rate
// differs from buffers[0]. nil buffers are skipped.
func CheckRates(buffers []*SampleBuffer) error {
	want := 0
	for i, b := range buffers {
		if b == nil {
			continue
		}
		if want == 0 {
			want = b.SampleRate
			continue
		}
		if b.SampleRate != want {
			return &RateMismatchError{Index: i, Want: want, Got: b.SampleRate}
		}
	}

	return nil
}
