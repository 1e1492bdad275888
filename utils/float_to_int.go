// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM.
//
// Input is clamped first. Negative values scale by 32768 and non-negative
// values by 32767, so both -1 and 1 land exactly on the int16 limits, and
// the result is truncated toward zero. NaN maps to silence.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}

// Int16ToFloat32 is the decoding counterpart used by the PCM decoders.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
