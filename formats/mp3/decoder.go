// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/harmix/audio"
)

// ErrNotMP3File is returned when no MPEG audio frame can be found.
var ErrNotMP3File = errors.New("not an MP3 stream")

// go-mp3 always emits 16-bit little-endian stereo.
const (
	outChannels = 2
	bytesPerVal = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd byte left over from a read that split a sample
	carry    byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outChannels }
func (s *source) Close() error    { return nil }

// BufSize returns a sample count, not bytes. It sizes from the stream length
// when go-mp3 could determine it, capped at one second of audio.
func (s *source) BufSize() int {
	second := int64(s.sampleRate * outChannels)
	if n := s.dec.Length() / bytesPerVal; n > 0 && n < second {
		return int(n)
	}
	if second > 0 && second < 8192 {
		return int(second)
	}
	return 8192
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * bytesPerVal
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	off := 0
	if s.hasCarry {
		s.buf[0] = s.carry
		s.hasCarry = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off
	if err != nil && err != io.EOF {
		err = fmt.Errorf("%w", err)
	}

	samples := n / bytesPerVal
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	if n%bytesPerVal == 1 && err == nil {
		s.carry = s.buf[n-1]
		s.hasCarry = true
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
