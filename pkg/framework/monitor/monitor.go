// Package monitor provides the copy-out interface external displays use to
// snapshot signals from the running graph, and a scope model holding the
// snapshots. Readers poll off the real-time thread; data is
// last-writer-wins with no tearing guarantee beyond per-float atomicity,
// which is acceptable for display purposes only.
package monitor

import (
	"fmt"

	"github.com/justyntemme/modular/pkg/dsp"
)

// Source is anything a monitor can snapshot samples from without taking
// ownership. block.Buf implements it.
type Source interface {
	CopyTo(n int, dst []float32)
}

// Scope holds fixed-capacity snapshot windows for a small number of
// signals, for oscilloscope style displays.
type Scope struct {
	sigs   [][]float32
	active []bool
}

// NewScope creates a scope for signals windows of length samples each.
func NewScope(signals, length int) *Scope {
	sigs := make([][]float32, signals)
	for i := range sigs {
		sigs[i] = make([]float32, length)
	}
	return &Scope{
		sigs:   sigs,
		active: make([]bool, signals),
	}
}

// SignalCount returns the number of signal slots.
func (s *Scope) SignalCount() int { return len(s.sigs) }

// Len returns the window length in samples.
func (s *Scope) Len() int {
	if len(s.sigs) == 0 {
		return 0
	}
	return len(s.sigs[0])
}

// Feed snapshots the next window for a signal and marks it active.
func (s *Scope) Feed(sig int, src Source) {
	if sig < 0 || sig >= len(s.sigs) {
		return
	}
	src.CopyTo(len(s.sigs[sig]), s.sigs[sig])
	s.active[sig] = true
}

// Clear zeroes a signal window and marks it inactive.
func (s *Scope) Clear(sig int) {
	if sig < 0 || sig >= len(s.sigs) {
		return
	}
	dsp.Clear(s.sigs[sig])
	s.active[sig] = false
}

// Read returns one sample of a signal window; out-of-range access reads as
// silence.
func (s *Scope) Read(sig, idx int) float32 {
	if sig < 0 || sig >= len(s.sigs) {
		return 0.0
	}
	win := s.sigs[sig]
	if idx < 0 || idx >= len(win) {
		return 0.0
	}
	return win[idx]
}

// IsActive reports whether a signal has been fed since the last Clear.
func (s *Scope) IsActive(sig int) bool {
	if sig < 0 || sig >= len(s.active) {
		return false
	}
	return s.active[sig]
}

// PeakRMS returns the peak and RMS level of a signal window, for meter
// style displays.
func (s *Scope) PeakRMS(sig int) (peak, rms float32) {
	if sig < 0 || sig >= len(s.sigs) {
		return 0.0, 0.0
	}
	return dsp.Peak(s.sigs[sig]), dsp.RMS(s.sigs[sig])
}

// FormatStats renders the min/max/range of a signal window for display.
func (s *Scope) FormatStats(sig int) string {
	if sig < 0 || sig >= len(s.sigs) {
		return ""
	}

	min := float32(99999.0)
	max := float32(-99999.0)
	for _, v := range s.sigs[sig] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}

	return fmt.Sprintf("in%d min: %6.3f max: %6.3f rng: %6.3f",
		sig+1, min, max, max-min)
}
