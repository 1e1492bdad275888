// SPDX-License-Identifier: EPL-2.0

// Package render mixes decoded tracks offline into a single buffer ready
// for encoding.
//
//	mix, err := render.Render(ctx, render.Fixed(buffers, render.DefaultGain), render.Options{})
//	data, err := wav.Encode(mix)
//
// Rendering never resamples: inputs with differing sample rates fail with
// *audio.RateMismatchError.
package render
