// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams through github.com/mewkiz/flac.
//
// Frames are decoded lazily as ReadSamples drains them and are interleaved
// into float32 normalized by 2^(bits-1). Channel decorrelation (left/side,
// mid/side) is undone by mewkiz/flac.
//
//	src, err := flac.Decoder{}.Decode(file)
//	buf, err := audio.Collect(src)
package flac
