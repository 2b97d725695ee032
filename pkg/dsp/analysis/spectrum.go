// Package analysis provides offline signal analysis for monitoring
// displays: windowed FFT magnitude snapshots of signal blocks. Nothing in
// this package runs on the audio thread; scopes and tests poll it with
// copied-out data.
package analysis

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum computes Hann-windowed FFT magnitude snapshots. All buffers are
// allocated once at construction; Analyze itself does not allocate.
type Spectrum struct {
	size    int
	plan    *algofft.Plan[complex128]
	window  []float64
	scratch []float64
	input   []complex128
	output  []complex128
	re      []float64
	im      []float64
	mags    []float64
}

// NewSpectrum creates an analyzer for power-of-two FFT sizes.
func NewSpectrum(size int) (*Spectrum, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("analysis: fft size must be a power of two, got %d", size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("analysis: init fft plan: %w", err)
	}

	window := make([]float64, size)
	for i := range window {
		window[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(size)))
	}

	bins := size/2 + 1
	return &Spectrum{
		size:    size,
		plan:    plan,
		window:  window,
		scratch: make([]float64, size),
		input:   make([]complex128, size),
		output:  make([]complex128, size),
		re:      make([]float64, bins),
		im:      make([]float64, bins),
		mags:    make([]float64, bins),
	}, nil
}

// Size returns the FFT size.
func (s *Spectrum) Size() int { return s.size }

// Analyze windows up to Size samples of src, zero-padding the rest, and
// returns the magnitudes of the lower half spectrum (Size/2+1 bins). The
// returned slice is reused by the next Analyze call.
func (s *Spectrum) Analyze(src []float32) []float64 {
	n := len(src)
	if n > s.size {
		n = s.size
	}
	for i := 0; i < n; i++ {
		s.scratch[i] = float64(src[i])
	}
	for i := n; i < s.size; i++ {
		s.scratch[i] = 0.0
	}

	vecmath.MulBlockInPlace(s.scratch, s.window)

	for i := 0; i < s.size; i++ {
		s.input[i] = complex(s.scratch[i], 0)
	}
	if err := s.plan.Forward(s.output, s.input); err != nil {
		return s.mags[:0]
	}

	for k := range s.mags {
		s.re[k] = real(s.output[k])
		s.im[k] = imag(s.output[k])
	}
	vecmath.Magnitude(s.mags, s.re, s.im)

	return s.mags
}

// BinFrequency converts a bin index of this analyzer to Hz.
func (s *Spectrum) BinFrequency(bin int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(s.size)
}

// PeakBin returns the index of the strongest bin in mags, ignoring DC.
func PeakBin(mags []float64) int {
	peak := 0
	for k := 1; k < len(mags); k++ {
		if peak == 0 || mags[k] > mags[peak] {
			peak = k
		}
	}
	return peak
}
