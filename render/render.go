// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"math"

	"github.com/ik5/harmix/audio"
)

const (
	// DefaultGain is the level every track starts at and the level an export
	// uses when it does not follow the live session.
	DefaultGain = 0.75
	// DefaultChannels is the channel count of an exported mix.
	DefaultChannels = 2
)

// Input is one track of a render.
type Input struct {
	Buffer *audio.SampleBuffer
	// Gain is a linear multiplier in [0, 1].
	Gain float64
}

// Options controls the rendered buffer's layout.
type Options struct {
	// Channels of the output; 0 means DefaultChannels.
	Channels int
}

// Fixed pairs every buffer with the same gain.
func Fixed(buffers []*audio.SampleBuffer, gain float64) []Input {
	inputs := make([]Input, len(buffers))
	for i, b := range buffers {
		inputs[i] = Input{Buffer: b, Gain: gain}
	}
	return inputs
}

// Render sums inputs into one buffer as long as the longest input, at the
// inputs' shared sample rate. Each input is scaled by its gain; the sum is
// hard-clamped to [-1, 1]. Shorter inputs contribute silence after their end.
//
// Channel mapping: a mono input feeds every output channel, a mono output
// takes the average of all input channels, and otherwise input channel c
// feeds output channel c. Extra output channels stay silent and extra input
// channels are dropped.
func Render(ctx context.Context, inputs []Input, opts Options) (*audio.SampleBuffer, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: nothing to render", audio.ErrNotReady)
	}

	channels := opts.Channels
	if channels == 0 {
		channels = DefaultChannels
	}
	if channels < 0 {
		return nil, fmt.Errorf("%w: %d output channels", audio.ErrRange, channels)
	}

	buffers := make([]*audio.SampleBuffer, len(inputs))
	frames := 0
	for i, in := range inputs {
		if in.Buffer == nil {
			return nil, fmt.Errorf("%w: track %d has no audio", audio.ErrNotReady, i)
		}
		if err := in.Buffer.Validate(); err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		if math.IsNaN(in.Gain) || in.Gain < 0 || in.Gain > 1 {
			return nil, fmt.Errorf("%w: track %d gain %v", audio.ErrRange, i, in.Gain)
		}
		buffers[i] = in.Buffer
		frames = max(frames, in.Buffer.Frames())
	}
	if err := audio.CheckRates(buffers); err != nil {
		return nil, err
	}

	out := audio.NewSampleBuffer(channels, frames, buffers[0].SampleRate)
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if in.Gain == 0 {
			continue
		}
		addInto(out, in.Buffer, float32(in.Gain))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, data := range out.Data {
		for i, v := range data {
			data[i] = max(-1, min(1, v))
		}
	}

	return out, nil
}

// addInto accumulates src * gain into out following the channel mapping.
func addInto(out, src *audio.SampleBuffer, gain float32) {
	srcCh := src.NumChannels()

	switch {
	case srcCh == 1:
		for _, dst := range out.Data {
			accumulate(dst, src.Data[0], gain)
		}
	case out.NumChannels() == 1:
		accumulate(out.Data[0], audio.Downmix(src), gain)
	default:
		for c := range min(srcCh, out.NumChannels()) {
			accumulate(out.Data[c], src.Data[c], gain)
		}
	}
}

func accumulate(dst, src []float32, gain float32) {
	for i, v := range src {
		dst[i] += v * gain
	}
}
