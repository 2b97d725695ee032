package monitor

import (
	"strings"
	"testing"

	"github.com/justyntemme/modular/pkg/dsp/block"
)

func TestScopeFeedAndRead(t *testing.T) {
	buf := block.New()
	for i := 0; i < block.BlockSize; i++ {
		buf.Write(i, float32(i)*0.01)
	}

	s := NewScope(3, 64)
	if s.SignalCount() != 3 || s.Len() != 64 {
		t.Fatalf("scope dims = (%d, %d)", s.SignalCount(), s.Len())
	}

	s.Feed(1, buf)
	if !s.IsActive(1) {
		t.Error("fed signal should be active")
	}
	if s.IsActive(0) || s.IsActive(2) {
		t.Error("unfed signals should stay inactive")
	}

	for i := 0; i < 64; i++ {
		if got := s.Read(1, i); got != float32(i)*0.01 {
			t.Fatalf("Read(1, %d) = %f, want %f", i, got, float32(i)*0.01)
		}
	}
}

func TestScopeNullSourceReadsSilence(t *testing.T) {
	s := NewScope(1, 16)
	s.Feed(0, block.Null())
	for i := 0; i < 16; i++ {
		if s.Read(0, i) != 0.0 {
			t.Fatalf("null source should snapshot silence")
		}
	}
}

func TestScopeClear(t *testing.T) {
	buf := block.New()
	buf.Fill(1.0)

	s := NewScope(1, 8)
	s.Feed(0, buf)
	s.Clear(0)

	if s.IsActive(0) {
		t.Error("cleared signal should be inactive")
	}
	if s.Read(0, 0) != 0.0 {
		t.Error("cleared signal should read silence")
	}
}

func TestScopeOutOfRangeTolerated(t *testing.T) {
	s := NewScope(1, 8)
	if s.Read(5, 0) != 0.0 || s.Read(0, 99) != 0.0 || s.Read(-1, -1) != 0.0 {
		t.Error("out-of-range reads should yield silence")
	}
	s.Feed(9, block.New()) // must not panic
	s.Clear(9)
	if s.IsActive(9) {
		t.Error("out-of-range signal cannot be active")
	}
}

func TestScopePeakRMS(t *testing.T) {
	buf := block.New()
	buf.Fill(0.5)
	buf.Write(3, -0.8)

	s := NewScope(1, 8)
	s.Feed(0, buf)

	peak, rms := s.PeakRMS(0)
	if peak != 0.8 {
		t.Errorf("peak = %f, want 0.8", peak)
	}
	if rms <= 0.0 || rms > peak {
		t.Errorf("rms = %f, want within (0, peak]", rms)
	}

	if p, r := s.PeakRMS(7); p != 0.0 || r != 0.0 {
		t.Error("out-of-range PeakRMS should be zero")
	}
}

func TestScopeFormatStats(t *testing.T) {
	buf := block.New()
	buf.Fill(0.5)
	buf.Write(0, -0.5)

	s := NewScope(1, 8)
	s.Feed(0, buf)

	got := s.FormatStats(0)
	if !strings.HasPrefix(got, "in1 ") {
		t.Errorf("FormatStats = %q", got)
	}
	if !strings.Contains(got, "min: -0.500") || !strings.Contains(got, "max:  0.500") {
		t.Errorf("FormatStats = %q, want min -0.500 / max 0.500", got)
	}
	if !strings.Contains(got, "rng:  1.000") {
		t.Errorf("FormatStats = %q, want rng 1.000", got)
	}
}
