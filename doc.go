// SPDX-License-Identifier: EPL-2.0

// Package harmix mixes an original vocal recording with its harmony tracks.
//
// The pipeline is fetch, decode, mix, encode:
//
//	data, err := harmix.Mixdown(ctx, []string{"vocal.wav", "third.mp3", "fifth.mp3"}, harmix.DefaultOptions())
//	err = harmix.WriteFile(afero.NewOsFs(), harmix.DefaultOutput, data)
//
// Each stage lives in its own package:
//   - fetch: bytes for a path or URL (afero filesystem, HTTP)
//   - formats: container sniffing and decoding (WAV, AIFF, MP3, Ogg Vorbis, FLAC)
//   - waveform: the amplitude outline drawn next to each track
//   - mixer: live audition with per-track gain and mute
//   - render: offline summation into one buffer
//   - formats/wav: 16-bit PCM WAV encoding
//
// For live audition, Load returns a mixer.Session:
//
//	session, err := harmix.Load(ctx, sources, opts)
//	defer session.Close()
//	session.Play()
//	session.SetGain(1, 0.4)
//
// Tracks are never resampled. Every track in one mix must share a sample
// rate, and the mix is produced at that rate.
package harmix
