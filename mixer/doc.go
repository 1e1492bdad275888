// SPDX-License-Identifier: EPL-2.0

// Package mixer auditions an original recording together with its harmony
// tracks.
//
// A Loader fetches and decodes every track in parallel and returns a
// Session. The Session plays all tracks from the same start sample through
// one beep mixer, with an effects.Gain node per track so gain and mute
// changes take effect on the next buffer without restarting playback.
//
//	session, err := mixer.Loader{Fetcher: fetch.NewFS()}.Load(ctx, sources)
//	if err != nil {
//	    // some tracks failed; session.Ready() is false
//	}
//	defer session.Close()
//
//	session.Play()
//	session.SetGain(1, 0.4)
//	session.SetMute(2, true)
//
// The system speaker is opened once per process, at the rate of the first
// session that plays, and is shared by every later session. Closing a
// session detaches only its own streamers.
//
// Playback stops by itself when the longest track ends. Tracks are never
// resampled: they must share one sample rate.
package mixer
