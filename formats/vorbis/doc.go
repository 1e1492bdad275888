// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Samples come back interleaved as float32 in [-1.0, 1.0], always in whole
// frames:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// The usual path collects a whole track for mixing:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	buf, err := audio.Collect(src)
//
// When the input is seekable, oggvorbis reports the stream length up front
// and BufSize sizes reads from it. Encoding is not supported.
package vorbis
