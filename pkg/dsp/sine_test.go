package dsp

import (
	"math"
	"testing"
)

func TestFastSinAccuracy(t *testing.T) {
	// Sweep a few periods either side of zero.
	for i := -4000; i <= 4000; i++ {
		x := float32(i) * 0.01
		got := float64(FastSin(x))
		want := math.Sin(float64(x))
		if math.Abs(got-want) > 2e-3 {
			t.Fatalf("FastSin(%f) = %f, want %f", x, got, want)
		}
	}
}

func TestFastSinAnchors(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{0, 0},
		{Pi / 2, 1},
		{Pi, 0},
		{3 * Pi / 2, -1},
		{TwoPi, 0},
	}
	for _, tt := range tests {
		got := FastSin(tt.x)
		if math.Abs(float64(got-tt.want)) > 2e-3 {
			t.Errorf("FastSin(%f) = %f, want %f", tt.x, got, tt.want)
		}
	}
}
