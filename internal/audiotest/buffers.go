// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides buffers, sources and encoded fixtures shared by
// the harmix tests.
package audiotest

import (
	"math"
	"time"

	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/formats/wav"
)

// Generate builds a buffer whose samples come from fn(frame, channel).
func Generate(sampleRate, channels, frames int, fn func(frame, channel int) float32) *audio.SampleBuffer {
	buf := audio.NewSampleBuffer(channels, frames, sampleRate)
	for ch := range channels {
		for f := range frames {
			buf.Data[ch][f] = fn(f, ch)
		}
	}

	return buf
}

// Constant builds a buffer filled with v.
func Constant(sampleRate, channels, frames int, v float32) *audio.SampleBuffer {
	return Generate(sampleRate, channels, frames, func(int, int) float32 { return v })
}

// Silence builds a zeroed buffer.
func Silence(sampleRate, channels, frames int) *audio.SampleBuffer {
	return audio.NewSampleBuffer(channels, frames, sampleRate)
}

// Sine builds a full-scale sine of frequency Hz on every channel.
func Sine(sampleRate, channels, frames int, frequency float64) *audio.SampleBuffer {
	return Generate(sampleRate, channels, frames, func(f, _ int) float32 {
		t := float64(f) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Lasting builds a constant buffer exactly d long at sampleRate.
func Lasting(sampleRate, channels int, d time.Duration, v float32) *audio.SampleBuffer {
	frames := int(d * time.Duration(sampleRate) / time.Second)
	return Constant(sampleRate, channels, frames, v)
}

// WAV encodes buf as 16-bit PCM WAV and panics on failure.
func WAV(buf *audio.SampleBuffer) []byte {
	data, err := wav.Encode(buf)
	if err != nil {
		panic("audiotest: " + err.Error())
	}
	return data
}
