// SPDX-License-Identifier: EPL-2.0

package formats

import "bytes"

// Format keys used by Sniff and the default registry.
const (
	WAV    = "wav"
	AIFF   = "aiff"
	Vorbis = "ogg"
	FLAC   = "flac"
	MP3    = "mp3"
)

// Sniff detects the container from its leading magic bytes. It returns ""
// when nothing matches.
func Sniff(data []byte) string {
	switch {
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return WAV
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("FORM")) &&
		(bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))):
		return AIFF
	case bytes.HasPrefix(data, []byte("OggS")):
		return Vorbis
	case bytes.HasPrefix(data, []byte("fLaC")):
		return FLAC
	case bytes.HasPrefix(data, []byte("ID3")):
		return MP3
	case isMPEGFrameSync(data):
		return MP3
	}

	return ""
}

// isMPEGFrameSync checks for an 11-bit frame sync followed by a Layer III
// header with a valid bitrate and sample-rate index.
func isMPEGFrameSync(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	if data[0] != 0xFF || data[1]&0xE0 != 0xE0 {
		return false
	}

	version := (data[1] >> 3) & 0x03
	layer := (data[1] >> 1) & 0x03
	bitrate := data[2] >> 4
	rate := (data[2] >> 2) & 0x03

	return version != 0x01 && layer == 0x01 && bitrate != 0x0F && bitrate != 0 && rate != 0x03
}
