// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"

	"github.com/ik5/harmix/audio"
)

// BufferSource streams a SampleBuffer back out as interleaved samples. It
// implements audio.Source.
type BufferSource struct {
	buf    *audio.SampleBuffer
	pos    int // frames already returned
	closed bool
}

// NewBufferSource creates a Source over buf.
func NewBufferSource(buf *audio.SampleBuffer) *BufferSource {
	return &BufferSource{buf: buf}
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *BufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *BufferSource) BufSize() int    { return 4096 }

func (s *BufferSource) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *BufferSource) Closed() bool { return s.closed }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.NumChannels()
	if s.pos >= s.buf.Frames() {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, s.buf.Frames()-s.pos)
	for f := range frames {
		for ch := range channels {
			dst[f*channels+ch] = s.buf.Data[ch][s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}

// Decoder is an audio.Decoder that ignores its input and returns Src or Err.
type Decoder struct {
	Src audio.Source
	Err error
}

func (d Decoder) Decode(io.Reader) (audio.Source, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Src, nil
}
