// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files through
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is accepted in any channel count.
// Samples are normalized by 2^(bits-1), so they fall in [-1.0, 1.0).
// AIFF stores big-endian samples and an 80-bit sample rate; go-audio
// handles both.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//	buf, err := audio.Collect(src)
//
// Compressed AIFF-C is not supported, and there is no encoder.
package aiff
