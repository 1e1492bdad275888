// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/gopxl/beep/v2"
	"github.com/ik5/harmix/audio"
)

// bufferStreamer plays a SampleBuffer from its first frame as stereo. Mono
// is duplicated to both sides; beyond two channels only the first two are
// heard.
type bufferStreamer struct {
	left, right []float32
	pos         int
}

var _ beep.Streamer = (*bufferStreamer)(nil)

func newBufferStreamer(buf *audio.SampleBuffer) *bufferStreamer {
	s := &bufferStreamer{left: buf.Data[0], right: buf.Data[0]}
	if buf.NumChannels() > 1 {
		s.right = buf.Data[1]
	}
	return s
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.left) {
		return 0, false
	}

	n := min(len(samples), len(s.left)-s.pos)
	for i := range n {
		samples[i][0] = float64(s.left[s.pos+i])
		samples[i][1] = float64(s.right[s.pos+i])
	}
	s.pos += n

	return n, true
}

func (s *bufferStreamer) Err() error { return nil }
