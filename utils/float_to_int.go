// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int16ToFloat32 scales a 16-bit sample into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16 is the inverse of Int16ToFloat32. Values outside [-1, 1]
// are clamped and the result is rounded, so Float32ToInt16(Int16ToFloat32(v))
// returns v for every int16.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768.0)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
