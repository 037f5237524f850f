package lfo

import (
	"math"
	"testing"

	"github.com/cbegin/dx7fm-go/internal/rng"
)

func TestTriangleShapeAtKeyPhases(t *testing.T) {
	l := New(Triangle, 35, 0, 99, 0, true, 100, rng.NewSplitMix64(1))
	pitch := make([]float64, 100)
	amp := make([]float64, 100)
	l.Render(pitch, amp, 0)
	// waveformValue(0) = -1, waveformValue(0.5) = +1, per the documented polarity choice.
	if math.Abs(pitch[0]-(-1.0)) > 1e-6 {
		t.Errorf("triangle at phase 0: got %f, want -1.0", pitch[0])
	}
}

func TestSquareShape(t *testing.T) {
	l := New(Square, 35, 0, 99, 0, true, 100, rng.NewSplitMix64(1))
	pitch := make([]float64, 100)
	amp := make([]float64, 100)
	l.Render(pitch, amp, 0)
	if pitch[0] <= 0 {
		t.Errorf("square first half should be positive, got %f", pitch[0])
	}
	// At 100 Hz sample rate and speed 35 (~0.68 Hz), sample 90 sits at
	// phase ~0.61, inside the second half of the cycle.
	if pitch[90] >= 0 {
		t.Errorf("square second half should be negative, got %f", pitch[90])
	}
}

func TestZeroPMDAndModWheelProducesZeroPitchMod(t *testing.T) {
	l := New(Sine, 35, 0, 0, 0, true, 44100, rng.NewSplitMix64(1))
	pitch := make([]float64, 512)
	amp := make([]float64, 512)
	l.Render(pitch, amp, 0)
	for _, v := range pitch {
		if v != 0 {
			t.Fatalf("expected all-zero pitch mod, got %f", v)
		}
	}
}

func TestZeroAMDProducesUnityAmpMod(t *testing.T) {
	l := New(Sine, 35, 0, 99, 0, true, 44100, rng.NewSplitMix64(1))
	pitch := make([]float64, 512)
	amp := make([]float64, 512)
	l.Render(pitch, amp, 0)
	for _, v := range amp {
		if v != 1.0 {
			t.Fatalf("expected all-unity amp mod, got %f", v)
		}
	}
}

func TestPhaseStaysInUnitRange(t *testing.T) {
	l := New(Sine, 99, 0, 50, 50, true, 44100, rng.NewSplitMix64(1))
	pitch := make([]float64, 4096)
	amp := make([]float64, 4096)
	for i := 0; i < 50; i++ {
		l.Render(pitch, amp, 0)
	}
	if l.phase < 0 || l.phase >= 1.0 {
		t.Fatalf("phase out of range: %f", l.phase)
	}
}

func TestDelayFadesInFromSilence(t *testing.T) {
	l := New(Square, 50, 99, 99, 0, true, 44100, rng.NewSplitMix64(1))
	l.GateOn()
	pitch := make([]float64, 1)
	amp := make([]float64, 1)
	l.Render(pitch, amp, 0)
	if pitch[0] != 0 {
		t.Fatalf("first sample under fade-in delay should be 0, got %f", pitch[0])
	}
	for i := 0; i < l.delaySamples; i++ {
		l.Render(pitch, amp, 0)
	}
	if pitch[0] == 0 {
		t.Fatalf("after the delay window, output should no longer be held at 0")
	}
}

func TestSampleAndHoldStaysWithinUnitDepth(t *testing.T) {
	l := New(SampleAndHold, 60, 0, 99, 0, true, 1000, rng.NewSplitMix64(7))
	pitch := make([]float64, 200)
	amp := make([]float64, 200)
	l.Render(pitch, amp, 0)
	for _, v := range pitch {
		if math.Abs(v) > 1.0+1e-9 {
			t.Fatalf("sample-and-hold exceeded unit depth: %f", v)
		}
	}
}
