//go:build !fastmath

package node

import "math"

// Precise curve math. The UI-facing normalize/denormalize round trip is
// specified to hold within 1e-4, so the default build uses the standard
// library. Build with -tags fastmath to trade that tolerance for cheaper
// approximations in the per-frame denormalization path.

func log2f(x float32) float32 {
	return float32(math.Log2(float64(x)))
}

func exp2f(x float32) float32 {
	return float32(math.Exp2(float64(x)))
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
