package operator

import (
	"math"
	"testing"
)

func TestComputeFrequencyRatio(t *testing.T) {
	cases := []struct {
		name           string
		coarse, fine   int
		wantApproxFreq float64
	}{
		{"coarse zero is half ratio", 0, 0, 0.5},
		{"coarse one is unity", 1, 0, 1.0},
		{"coarse two with fine", 2, 50, 2 * 1.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeFrequencyRatio(c.coarse, c.fine)
			if math.Abs(got-c.wantApproxFreq) > 1e-9 {
				t.Errorf("got %f want %f", got, c.wantApproxFreq)
			}
		})
	}
}

func TestOutputLevelToAmplitudeBoundaries(t *testing.T) {
	if OutputLevelToAmplitude(0) != 0 {
		t.Fatalf("level 0 should be silent")
	}
	if got := OutputLevelToAmplitude(99); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("level 99 should be full amplitude, got %f", got)
	}
}

func TestVelocityScaleInsensitiveWhenZero(t *testing.T) {
	if VelocityScale(1, 0) != 1.0 {
		t.Fatalf("sensitivity 0 should always scale to 1.0")
	}
	if VelocityScale(127, 7) != 1.0 {
		t.Fatalf("max velocity at max sensitivity should reach 1.0")
	}
	low := VelocityScale(1, 7)
	if low <= 0 || low >= 1 {
		t.Fatalf("low velocity at max sensitivity should sit in (0,1), got %f", low)
	}
}

func TestKeyboardLevelScalingSymmetry(t *testing.T) {
	kls := KeyboardLevelScaling{Breakpoint: 60, LeftDepth: 50, RightDepth: 50, LeftCurve: CurveNegLinear, RightCurve: CurveNegLinear}
	if kls.ScaleFactor(60) != 1.0 {
		t.Fatalf("at breakpoint scale should be 1.0")
	}
	if kls.ScaleFactor(12) >= 1.0 {
		t.Fatalf("far below breakpoint with negative curve should attenuate")
	}
}

func TestKeyRateScalingIncreasesAboveC1(t *testing.T) {
	low := KeyRateScaling(50, 30, 7)
	high := KeyRateScaling(50, 100, 7)
	if high <= low {
		t.Fatalf("higher notes should scale rate up: low=%d high=%d", low, high)
	}
	if KeyRateScaling(50, 100, 0) != 50 {
		t.Fatalf("krs=0 should leave rate unchanged")
	}
}

func TestRenderPhaseStaysInRange(t *testing.T) {
	op := New(Params{RatioMode: true, Coarse: 1, OutputLevel: 99, Rates: [4]int{99, 99, 99, 99}, Levels: [4]int{99, 99, 99, 0}}, 44100)
	op.GateOn(69, 127, 440)
	out := make([]float64, 512)
	env := make([]float64, 512)
	for i := 0; i < 50; i++ {
		op.Render(out, env, nil, nil, true)
	}
	if op.phase < 0 || op.phase >= twoPi {
		t.Fatalf("phase out of range: %f", op.phase)
	}
}

func TestRenderWithFeedbackBounded(t *testing.T) {
	op := New(Params{RatioMode: true, Coarse: 1, OutputLevel: 99, Rates: [4]int{99, 99, 99, 99}, Levels: [4]int{99, 99, 99, 0}}, 44100)
	op.GateOn(69, 127, 440)
	out := make([]float64, 512)
	env := make([]float64, 512)
	var fb [2]float64
	op.RenderWithFeedback(out, env, math.Pi/4, &fb, nil)
	for _, v := range out {
		if math.Abs(v) > op.ModIndex()+1e-9 {
			t.Fatalf("feedback sample exceeds mod index bound: %f", v)
		}
	}
}
