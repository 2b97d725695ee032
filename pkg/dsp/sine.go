package dsp

import "math"

// Angle constants used by the oscillator hot path.
const (
	Pi    = math.Pi
	TwoPi = 2.0 * math.Pi
)

// FastSin approximates sin(x) with a parabola plus one refinement term.
// Maximum absolute error is around 1e-3, inaudible for oscillator use and
// much cheaper than math.Sin when called once per frame. The input may be
// any angle in radians; it is wrapped internally.
func FastSin(x float32) float32 {
	// Wrap into [-pi, pi).
	x = float32(math.Mod(float64(x)+Pi, TwoPi))
	if x < 0 {
		x += TwoPi
	}
	x -= Pi

	const b = 4.0 / Pi
	const c = -4.0 / (Pi * Pi)

	y := b*x + c*x*abs32(x)

	const p = 0.225
	return p*(y*abs32(y)-y) + y
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
