// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16383}, // 16383.5 truncated
		{name: "half negative", input: -0.5, want: -16384},
		{name: "quarter positive", input: 0.25, want: 8191}, // 8191.75 truncated
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative", input: -0.001, want: -32}, // -32.768 truncated toward zero
		{name: "clamp positive", input: 1.5, want: math.MaxInt16},
		{name: "clamp negative", input: -1.5, want: math.MinInt16},
		{name: "large positive", input: 100.0, want: math.MaxInt16},
		{name: "large negative", input: -100.0, want: math.MinInt16},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
		{name: "NaN", input: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f(%v) = %v < previous %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestInt16ToFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	for f := -1.0; f <= 1.0; f += 0.001 {
		back := Int16ToFloat32(Float32ToInt16(float32(f)))
		// Truncation plus the 32767/32768 scale mismatch on the positive side.
		if diff := math.Abs(float64(back) - f); diff > 2.0/32768+1e-7 {
			t.Errorf("round trip of %v = %v (diff %v)", f, back, diff)
		}
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	inputs := []float32{-2.0, -1.0, -0.3, 0.0, 0.3, 1.0, 2.0}

	b.ReportAllocs()

	for i := range b.N {
		_ = Float32ToInt16(inputs[i%len(inputs)])
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
