// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/harmix/audio"
)

// DefaultBuckets is the number of bars drawn per track.
const DefaultBuckets = 100

// ErrInvalidBuckets is returned for a bucket count below one.
var ErrInvalidBuckets = errors.New("bucket count must be at least 1")

// Envelope is a normalized amplitude outline: every value is in [0, 1] and
// the loudest bucket is 1 unless the input is silent.
type Envelope []float32

// Summarize reduces samples to exactly buckets values. Each value is the
// mean absolute amplitude of one block of floor(len/buckets) samples; the
// remainder after the last full block is ignored. With fewer samples than
// buckets each sample fills one bucket and the rest stay 0. NaN and
// infinite samples count as silence.
func Summarize(samples []float32, buckets int) (Envelope, error) {
	if buckets < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBuckets, buckets)
	}

	env := make(Envelope, buckets)
	if len(samples) == 0 {
		return env, nil
	}

	blockSize := max(len(samples)/buckets, 1)

	var peak float64
	means := make([]float64, buckets)
	for i := range buckets {
		start := i * blockSize
		if start+blockSize > len(samples) {
			break
		}

		var sum float64
		for _, v := range samples[start : start+blockSize] {
			a := math.Abs(float64(v))
			if math.IsNaN(a) || math.IsInf(a, 0) {
				continue
			}
			sum += a
		}
		means[i] = sum / float64(blockSize)
		peak = max(peak, means[i])
	}

	if peak == 0 {
		return env, nil
	}

	for i, m := range means {
		env[i] = float32(m / peak)
	}

	return env, nil
}

// SummarizeBuffer summarizes the first channel of buf.
func SummarizeBuffer(buf *audio.SampleBuffer, buckets int) (Envelope, error) {
	if buf == nil || buf.NumChannels() == 0 {
		return nil, audio.ErrNoChannels
	}

	return Summarize(buf.Channel(0), buckets)
}
