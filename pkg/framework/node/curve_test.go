package node

import (
	"math"
	"testing"
)

// The UI relies on normalize(denormalize(n)) recovering n for knob
// positions; every curve family must round-trip within 1e-4.
func TestCurveRoundTrip(t *testing.T) {
	curves := []struct {
		name string
		c    Curve
		lo   float32
	}{
		{"identity", idCurve, 0.0},
		{"lin(-1,1)", linCurve(-1.0, 1.0), 0.0},
		{"lin(0,10)", linCurve(0.0, 10.0), 0.0},
		{"exp(0,2)", expCurve(0.0, 2.0), 0.0},
		{"exp(0,1)", expCurve(0.0, 1.0), 0.0},
		{"exp4(0,1)", exp4Curve(0.0, 1.0), 0.0},
		// The pitch curve spans +-10 octaves around 440 Hz.
		{"pitch", pitchCurve, -1.0},
	}

	for _, tt := range curves {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i <= 1000; i++ {
				n := tt.lo + (1.0-tt.lo)*float32(i)/1000.0
				d := tt.c.Denorm(n)
				got := tt.c.Norm(d)
				if math.Abs(float64(got-n)) > 1e-4 {
					t.Fatalf("round trip n=%f: denorm=%f norm=%f", n, d, got)
				}
			}
		})
	}
}

func TestPitchCurveAnchors(t *testing.T) {
	tests := []struct {
		norm float32
		hz   float32
	}{
		{-0.2, 110.0},
		{0.0, 440.0},
		{0.1, 880.0},
		{0.3, 3520.0},
	}

	for _, tt := range tests {
		if got := pitchCurve.Denorm(tt.norm); math.Abs(float64(got-tt.hz)) > 0.1 {
			t.Errorf("Denorm(%f) = %f, want %f", tt.norm, got, tt.hz)
		}
		if got := pitchCurve.Norm(tt.hz); math.Abs(float64(got-tt.norm)) > 1e-4 {
			t.Errorf("Norm(%f) = %f, want %f", tt.hz, got, tt.norm)
		}
	}
}

func TestExpCurveShaping(t *testing.T) {
	c := expCurve(0.0, 2.0)

	// Square-law spacing: half the knob travel covers a quarter of the
	// range.
	if got := c.Denorm(0.5); math.Abs(float64(got-0.5)) > 1e-6 {
		t.Errorf("Denorm(0.5) = %f, want 0.5", got)
	}
	if got := c.Denorm(1.0); got != 2.0 {
		t.Errorf("Denorm(1.0) = %f, want 2.0", got)
	}
	if got := c.Denorm(0.0); got != 0.0 {
		t.Errorf("Denorm(0.0) = %f, want 0.0", got)
	}
}

func TestExp4CurveShaping(t *testing.T) {
	c := exp4Curve(0.0, 1.0)
	if got := c.Denorm(0.5); math.Abs(float64(got-0.0625)) > 1e-6 {
		t.Errorf("Denorm(0.5) = %f, want 0.0625", got)
	}
}

func TestPitchCurveClampsLowInput(t *testing.T) {
	// Frequencies at or below zero clamp to 0.01 Hz before the log.
	n0 := pitchCurve.Norm(0.0)
	nNeg := pitchCurve.Norm(-5.0)
	if n0 != nNeg {
		t.Errorf("Norm(0) = %f, Norm(-5) = %f, want equal clamped values", n0, nNeg)
	}
}
