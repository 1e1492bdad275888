// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src into a SampleBuffer, de-interleaving the samples into
// one slice per channel. A trailing partial frame is dropped. src is not
// closed.
func Collect(src Source) (*SampleBuffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, src.SampleRate())
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	// Reads must cover whole frames.
	bufSize -= bufSize % channels

	buf := make([]float32, bufSize)
	out := NewSampleBuffer(channels, 0, src.SampleRate())

	// Samples that did not complete a frame on the previous read.
	var pending []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			chunk := buf[:n]
			if len(pending) > 0 {
				chunk = append(pending, chunk...)
				pending = nil
			}

			frames := len(chunk) / channels
			for f := range frames {
				base := f * channels
				for ch := range channels {
					out.Data[ch] = append(out.Data[ch], chunk[base+ch])
				}
			}

			if rest := len(chunk) - frames*channels; rest > 0 {
				pending = append(pending[:0:0], chunk[frames*channels:]...)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// A source that returns nothing without error would spin forever.
			break
		}
	}

	return out, nil
}
