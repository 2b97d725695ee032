// Package param produces the smoothed per-frame parameter buffers nodes
// consume. Host layers set normalized targets between blocks; the smoother
// ramps toward them to prevent zipper noise on control changes.
package param

import (
	"math"

	"github.com/justyntemme/modular/pkg/dsp/block"
)

// settleThreshold is the distance below which the smoother snaps to its
// target and stops ramping.
const settleThreshold = 0.0001

// Smoother is a one-pole ramp for a single normalized parameter. It is not
// safe for concurrent use; the host drives it between blocks.
type Smoother struct {
	current float32
	target  float32
	coeff   float32
	ramping bool
}

// NewSmoother returns a smoother that covers most of a target change within
// timeMs milliseconds at the given sample rate.
func NewSmoother(sampleRate, timeMs float32) *Smoother {
	s := &Smoother{}
	s.SetTime(sampleRate, timeMs)
	return s
}

// SetTime recomputes the ramp coefficient, reaching -60 dB of the remaining
// distance in timeMs milliseconds.
func (s *Smoother) SetTime(sampleRate, timeMs float32) {
	samples := float64(sampleRate) * float64(timeMs) / 1000.0
	if samples < 1 {
		samples = 1
	}
	s.coeff = float32(math.Exp(-6.908 / samples))
}

// Reset jumps straight to v with no ramp.
func (s *Smoother) Reset(v float32) {
	s.current = v
	s.target = v
	s.ramping = false
}

// Set updates the ramp target.
func (s *Smoother) Set(target float32) {
	if abs32(target-s.target) < settleThreshold && !s.ramping {
		return
	}
	s.target = target
	s.ramping = true
}

// IsSmoothing reports whether the value is still approaching its target.
func (s *Smoother) IsSmoothing() bool { return s.ramping }

// Next advances one frame and returns the smoothed value.
func (s *Smoother) Next() float32 {
	if !s.ramping {
		return s.current
	}
	s.current += (s.target - s.current) * (1.0 - s.coeff)
	if abs32(s.current-s.target) < settleThreshold {
		s.current = s.target
		s.ramping = false
	}
	return s.current
}

// NextBlock fills the first frames entries of buf with smoothed values.
// Writes to a null buffer are dropped but the ramp still advances, so a
// disconnected parameter keeps tracking its target.
func (s *Smoother) NextBlock(buf block.Buf, frames int) {
	for frame := 0; frame < frames; frame++ {
		buf.Write(frame, s.Next())
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
