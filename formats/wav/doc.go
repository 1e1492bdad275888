// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files and encodes mixdowns as 16-bit PCM WAV.
//
// Decoding goes through github.com/go-audio/wav, which walks the RIFF chunk
// list, so LIST/INFO chunks between "fmt " and "data" are skipped. Integer
// PCM at 16, 24 and 32 bits is accepted, including WAVE_FORMAT_EXTENSIBLE
// headers. Samples come back as float32 in [-1.0, 1.0).
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.Collect(src)
//
// # Encoding
//
// Encode turns a de-interleaved audio.SampleBuffer into a complete file:
// a 44-byte canonical header followed by interleaved little-endian int16
// frames. Each sample is clamped to [-1, 1] and scaled asymmetrically
// (negative by 32768, positive by 32767) with truncation toward zero.
//
//	data, err := wav.Encode(mix)
//
// WriteWAV16 remains for mono int16 data that is already quantized.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedFormat: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: the bit depth is not 16, 24 or 32
//   - ErrTooLarge: the encoded data would overflow the 32-bit RIFF size
package wav
