// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/harmix/audio"
	"github.com/jfreymuth/oggvorbis"
)

// ErrNotVorbisFile is returned when the stream has no valid Ogg Vorbis headers.
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis stream")

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// BufSize covers the whole stream when its length is known, capped at one
// second, so Collect needs few reads.
func (s *source) BufSize() int {
	frames := s.dec.Length()
	if frames <= 0 || frames > int64(s.sampleRate) {
		frames = 4096
	}
	return int(frames) * s.channels
}

// ReadSamples decodes straight into dst. oggvorbis returns interleaved values,
// always whole frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) < s.channels {
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:len(dst)-len(dst)%s.channels])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
