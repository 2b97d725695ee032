//go:build fastmath

package node

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2, used for log base conversions.
const ln2 = 0.693147180559945309417232121458

// Fast approximations for the curve math. log2(x) = ln(x)/ln(2) and
// 2^x = e^(x*ln(2)); the approximation error is well below audible
// thresholds but can exceed the 1e-4 UI round-trip tolerance.

func log2f(x float32) float32 {
	return float32(approx.FastLog(float64(x)) / ln2)
}

func exp2f(x float32) float32 {
	return float32(approx.FastExp(float64(x) * ln2))
}

func sqrtf(x float32) float32 {
	return float32(approx.FastSqrt(float64(x)))
}
