// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/harmix/audio"
	"github.com/ik5/harmix/utils"
)

// Encode serializes buf into a canonical 16-bit PCM WAV byte stream: the
// 44-byte header followed by channel-interleaved little-endian samples.
// Samples are converted with utils.Float32ToInt16. The output depends only
// on the buffer contents, its channel count and its sample rate.
func Encode(buf *audio.SampleBuffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}

	channels := buf.NumChannels()
	frames := buf.Frames()

	size, err := dataSize(frames, channels)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize+int(size))
	putHeader(out, uint16(channels), uint32(buf.SampleRate), size)

	offset := headerSize
	for f := range frames {
		for ch := range channels {
			binary.LittleEndian.PutUint16(out[offset:offset+2], uint16(utils.Float32ToInt16(buf.Data[ch][f])))
			offset += 2
		}
	}

	return out, nil
}

// WriteBuffer encodes buf and writes the result to w in one call. Nothing
// is written when encoding fails.
func WriteBuffer(w io.Writer, buf *audio.SampleBuffer) error {
	data, err := Encode(buf)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
