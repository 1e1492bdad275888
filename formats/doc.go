// SPDX-License-Identifier: EPL-2.0

// Package formats ties the container decoders together: Sniff recognizes
// WAV, AIFF, Ogg, FLAC and MP3 from their magic bytes, and Decode turns a
// whole encoded file into an audio.SampleBuffer.
//
//	buf, err := formats.Decode(nil, data) // nil uses Default()
//	var de *audio.DecodeError
//	if errors.As(err, &de) {
//	    // de.Format names the container that failed
//	}
package formats
