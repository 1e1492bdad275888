// SPDX-License-Identifier: EPL-2.0

// Package waveform draws the per-track amplitude outline shown next to each
// track's gain control.
//
//	env, err := waveform.SummarizeBuffer(buf, waveform.DefaultBuckets)
//
// Summaries are pure functions of their input.
package waveform
