// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"sync"

	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/formats/aiff"
	"github.com/ik5/harmix/formats/flac"
	"github.com/ik5/harmix/formats/mp3"
	"github.com/ik5/harmix/formats/vorbis"
	"github.com/ik5/harmix/formats/wav"
)

// ErrEmpty is returned when a stream decodes to zero frames.
var ErrEmpty = errors.New("decoded stream has no frames")

// NewRegistry returns a registry with every built-in decoder.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(WAV, wav.Decoder{})
	reg.Register(AIFF, aiff.Decoder{})
	reg.Register(Vorbis, vorbis.Decoder{})
	reg.Register(FLAC, flac.Decoder{})
	reg.Register(MP3, mp3.Decoder{})

	return reg
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the shared registry built by NewRegistry.
func Default() *audio.Registry { return defaultRegistry() }

// Decode sniffs data, decodes it with the matching decoder from reg and
// collects the whole stream. Every failure is an *audio.DecodeError; the
// caller fills in Index and Label.
func Decode(reg *audio.Registry, data []byte) (*audio.SampleBuffer, error) {
	if reg == nil {
		reg = Default()
	}

	format := Sniff(data)
	if format == "" {
		return nil, &audio.DecodeError{Err: audio.ErrUnknownFormat}
	}

	dec, ok := reg.Get(format)
	if !ok {
		return nil, &audio.DecodeError{Format: format, Err: audio.ErrUnknownFormat}
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &audio.DecodeError{Format: format, Err: err}
	}
	defer src.Close()

	buf, err := audio.Collect(src)
	if err != nil {
		return nil, &audio.DecodeError{Format: format, Err: err}
	}
	if buf.Frames() == 0 {
		return nil, &audio.DecodeError{Format: format, Err: ErrEmpty}
	}

	return buf, nil
}
