// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so the Source reports two channels
// even for mono files. Samples are scaled by 1/32768 into [-1.0, 1.0).
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File)
//	}
//	buf, err := audio.Collect(src)
//
// Decoding only; there is no MP3 encoder.
package mp3
