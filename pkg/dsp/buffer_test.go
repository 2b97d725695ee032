package dsp

import (
	"math"
	"testing"
)

func TestClear(t *testing.T) {
	buf := []float32{1.0, -2.0, 3.0}
	Clear(buf)
	for i, v := range buf {
		if v != 0.0 {
			t.Errorf("buf[%d] = %f after Clear", i, v)
		}
	}
}

func TestAdd(t *testing.T) {
	dst := []float32{1.0, 2.0, 3.0}
	Add(dst, []float32{0.5, -1.0})

	want := []float32{1.5, 1.0, 3.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want[i])
		}
	}
}

func TestScale(t *testing.T) {
	buf := []float32{1.0, -2.0, 0.5}
	Scale(buf, 2.0)

	want := []float32{2.0, -4.0, 1.0}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %f, want %f", i, buf[i], want[i])
		}
	}
}

func TestPeak(t *testing.T) {
	if p := Peak([]float32{0.1, -0.8, 0.5}); p != 0.8 {
		t.Errorf("Peak = %f, want 0.8", p)
	}
	if p := Peak(nil); p != 0.0 {
		t.Errorf("Peak(nil) = %f", p)
	}
}

func TestRMS(t *testing.T) {
	// A full-scale square wave has unity RMS.
	if r := RMS([]float32{1.0, -1.0, 1.0, -1.0}); math.Abs(float64(r-1.0)) > 1e-6 {
		t.Errorf("square RMS = %f, want 1.0", r)
	}

	// A sine has RMS of 1/sqrt(2).
	sine := make([]float32, 1024)
	for i := range sine {
		sine[i] = float32(math.Sin(2 * math.Pi * 8 * float64(i) / float64(len(sine))))
	}
	want := 1.0 / math.Sqrt2
	if r := RMS(sine); math.Abs(float64(r)-want) > 1e-3 {
		t.Errorf("sine RMS = %f, want %f", r, want)
	}

	if r := RMS(nil); r != 0.0 {
		t.Errorf("RMS(nil) = %f", r)
	}
}
