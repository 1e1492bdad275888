// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// SampleBuffer is one fully decoded track: de-interleaved float32 samples,
// one slice per channel, all of the same length.
//
// A SampleBuffer is treated as immutable once decoding produced it, so the
// same buffer can be read concurrently by a live session and an offline
// render.
type SampleBuffer struct {
	// Data holds one slice per channel.
	Data [][]float32
	// SampleRate in Hz.
	SampleRate int
}

// NewSampleBuffer allocates a zeroed buffer of channels x frames.
func NewSampleBuffer(channels, frames, sampleRate int) *SampleBuffer {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
	}

	return &SampleBuffer{Data: data, SampleRate: sampleRate}
}

// NumChannels returns the channel count.
func (b *SampleBuffer) NumChannels() int { return len(b.Data) }

// Frames returns the number of samples in each channel.
func (b *SampleBuffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration is the playback length of the buffer at its own sample rate.
func (b *SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Channel returns the samples of channel ch.
func (b *SampleBuffer) Channel(ch int) []float32 { return b.Data[ch] }

// Validate checks the buffer invariants: at least one channel, a positive
// sample rate and equal frame counts across channels.
func (b *SampleBuffer) Validate() error {
	if b == nil || len(b.Data) == 0 {
		return ErrNoChannels
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}

	frames := len(b.Data[0])
	for ch, data := range b.Data {
		if len(data) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d",
				ErrRaggedChannels, ch, len(data), frames)
		}
	}

	return nil
}
