// Package dsp provides signal math shared by the node implementations and
// the monitoring layer: slice-level buffer operations and the fast sine
// approximation. Everything here is allocation free.
package dsp

import "math"

// Clear zeroes a buffer.
func Clear(buf []float32) {
	for i := range buf {
		buf[i] = 0
	}
}

// Add accumulates src into dst, up to the shorter length.
func Add(dst, src []float32) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
}

// Scale multiplies every sample by a constant.
func Scale(buf []float32, s float32) {
	for i := range buf {
		buf[i] *= s
	}
}

// Peak returns the maximum absolute sample value.
func Peak(buf []float32) float32 {
	peak := float32(0)
	for _, s := range buf {
		if a := abs32(s); a > peak {
			peak = a
		}
	}
	return peak
}

// RMS returns the root mean square of the buffer.
func RMS(buf []float32) float32 {
	if len(buf) == 0 {
		return 0
	}
	sum := float32(0)
	for _, s := range buf {
		sum += s * s
	}
	return float32(math.Sqrt(float64(sum / float32(len(buf)))))
}
