package voice

import (
	"math"
	"testing"

	"github.com/cbegin/dx7fm-go/internal/preset"
)

func TestIdleVoiceRendersSilence(t *testing.T) {
	v := New(44100, 256, 1)
	out := make([]float64, 256)
	v.Render(out)
	for _, s := range out {
		if s != 0 {
			t.Fatalf("idle voice should render silence, got %f", s)
		}
	}
}

func TestGateOnMakesVoiceActive(t *testing.T) {
	v := New(44100, 256, 1)
	v.GateOn(69, 127)
	if !v.IsActive() {
		t.Fatalf("voice should be active after gate_on")
	}
	out := make([]float64, 256)
	v.Render(out)
	if !v.ActiveFlag() {
		t.Fatalf("voice should still be active after at least one render")
	}
}

func TestGateOffEventuallyIdles(t *testing.T) {
	fastRelease := preset.Default()
	fastRelease.Operators[0].Rates = [4]int{99, 99, 99, 80}
	v := New(44100, 256, 1)
	v.LoadPreset(fastRelease)
	v.GateOn(69, 127)
	out := make([]float64, 256)
	for i := 0; i < 10; i++ {
		v.Render(out)
	}
	v.GateOff()
	for i := 0; i < 2000 && v.ActiveFlag(); i++ {
		v.Render(out)
	}
	if v.ActiveFlag() {
		t.Fatalf("voice should eventually idle after gate_off")
	}
}

func TestRenderOutputFiniteAndBounded(t *testing.T) {
	v := New(44100, 256, 1)
	v.GateOn(69, 127)
	out := make([]float64, 256)
	for i := 0; i < 50; i++ {
		v.Render(out)
		for _, s := range out {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				t.Fatalf("non-finite sample: %f", s)
			}
		}
	}
}

func TestResetForcesIdle(t *testing.T) {
	v := New(44100, 256, 1)
	v.GateOn(69, 127)
	v.Reset()
	if v.ActiveFlag() || v.Gate() || v.Note() != -1 {
		t.Fatalf("reset should force idle, got active=%v gate=%v note=%d", v.ActiveFlag(), v.Gate(), v.Note())
	}
}
