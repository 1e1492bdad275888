// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages all channels of buf into a single mono channel.
// A mono buffer is returned as is, without copying.
func Downmix(buf *SampleBuffer) []float32 {
	channels := buf.NumChannels()
	switch channels {
	case 0:
		return nil
	case 1:
		return buf.Data[0]
	}

	frames := buf.Frames()
	dst := make([]float32, frames)

	// Unrolled loop for common cases
	switch channels {
	case 2: // Stereo (most common)
		left, right := buf.Data[0], buf.Data[1]
		for f := range frames {
			dst[f] = (left[f] + right[f]) * 0.5
		}
	default: // Generic path
		invChannels := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			for ch := range channels {
				sum += buf.Data[ch][f]
			}
			dst[f] = sum * invChannels
		}
	}

	return dst
}
