// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/harmix/audio"
	"github.com/mewkiz/flac"
)

var (
	// ErrNotFlacFile is returned when the stream lacks the fLaC signature or
	// a valid STREAMINFO block.
	ErrNotFlacFile = errors.New("not a FLAC stream")

	// ErrUnsupportedBitDepth indicates a sample size outside 4..32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)

// blockReader yields one decoded FLAC frame at a time as per-channel
// samples. It wraps *flac.Stream to allow testing.
type blockReader interface {
	next() (channels [][]int32, bitsPerSample uint8, err error)
	Close() error
}

type streamReader struct {
	stream *flac.Stream
}

func (r streamReader) next() ([][]int32, uint8, error) {
	frame, err := r.stream.ParseNext()
	if err != nil {
		return nil, 0, err
	}

	channels := make([][]int32, len(frame.Subframes))
	for i, sub := range frame.Subframes {
		channels[i] = sub.Samples
	}

	return channels, frame.BitsPerSample, nil
}

func (r streamReader) Close() error { return r.stream.Close() }

type source struct {
	dec        blockReader
	sampleRate int
	channels   int
	total      int64 // frames, 0 when unknown

	// interleaved samples decoded but not yet returned
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.dec.Close() }

// BufSize sizes reads from STREAMINFO's total when present, capped at one
// second.
func (s *source) BufSize() int {
	frames := s.total
	if frames <= 0 || frames > int64(s.sampleRate) {
		frames = 4096
	}
	return int(frames) * s.channels
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.fill(); err != nil {
				if err == io.EOF {
					s.eof = true
					break
				}
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && s.eof {
		return 0, io.EOF
	}

	return n, nil
}

// fill decodes the next FLAC frame into pending.
func (s *source) fill() error {
	blocks, bps, err := s.dec.next()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("parsing FLAC frame: %w", err)
	}
	if len(blocks) != s.channels {
		return fmt.Errorf("FLAC frame has %d channels, stream has %d", len(blocks), s.channels)
	}
	if bps < 4 || bps > 32 {
		return fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bps)
	}

	scale := 1 / float32(int64(1)<<(bps-1))
	frames := len(blocks[0])
	if cap(s.pending) < frames*s.channels {
		s.pending = make([]float32, frames*s.channels)
	}
	s.pending = s.pending[:frames*s.channels]

	for ch, samples := range blocks {
		for f, v := range samples[:frames] {
			s.pending[f*s.channels+ch] = float32(v) * scale
		}
	}

	return nil
}

type Decoder struct{}

// Decode parses the fLaC signature and STREAMINFO. Audio frames are decoded
// lazily by ReadSamples.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrNotFlacFile
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return &source{
		dec:        streamReader{stream: stream},
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		total:      int64(info.NSamples),
	}, nil
}
