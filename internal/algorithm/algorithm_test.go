package algorithm

import (
	"math"
	"testing"

	"github.com/cbegin/dx7fm-go/internal/operator"
)

func TestAllTopologiesHaveCompleteRenderOrder(t *testing.T) {
	for i := range Topologies {
		order := Topologies[i].RenderOrder()
		if len(order) != 6 {
			t.Fatalf("algorithm %d: render order has %d entries, want 6", i, len(order))
		}
		seen := map[int]bool{}
		for _, o := range order {
			seen[o] = true
		}
		if len(seen) != 6 {
			t.Fatalf("algorithm %d: render order has duplicates: %v", i, order)
		}
	}
}

func TestRenderOrderRespectsDependencies(t *testing.T) {
	for i := range Topologies {
		topo := &Topologies[i]
		pos := map[int]int{}
		for p, o := range topo.RenderOrder() {
			pos[o] = p
		}
		for _, m := range topo.Modulations {
			src, dst := m[0], m[1]
			if src == dst {
				continue // self-feedback edge
			}
			if pos[src] >= pos[dst] {
				t.Fatalf("algorithm %d: src %d not before dst %d in order %v", i, src, dst, topo.RenderOrder())
			}
		}
	}
}

func TestFeedbackLevelsBounded(t *testing.T) {
	for p := 0; p <= 7; p++ {
		level := FeedbackParamToLevel(p)
		if math.Abs(level) > math.Pi/4+1e-9 {
			t.Fatalf("feedback param %d exceeds pi/4: %f", p, level)
		}
	}
	if FeedbackParamToLevel(99) != math.Pi/4 {
		t.Fatalf("out-of-range feedback param should clamp to 7")
	}
}

func TestIndexWraps(t *testing.T) {
	if Index(32) != 0 {
		t.Fatalf("index 32 should wrap to 0")
	}
	if Index(-1) != 31 {
		t.Fatalf("index -1 should wrap to 31")
	}
}

func newTestOps(sampleRate float64) [6]*operator.Operator {
	var ops [6]*operator.Operator
	for i := range ops {
		level := 0
		if i == 0 {
			level = 99
		}
		ops[i] = operator.New(operator.Params{
			RatioMode:   true,
			Coarse:      1,
			OutputLevel: level,
			Rates:       [4]int{99, 99, 99, 99},
			Levels:      [4]int{99, 99, 99, 0},
		}, sampleRate)
		ops[i].GateOn(69, 127, 440)
	}
	return ops
}

func TestSingleCarrierAlgorithmProducesFiniteBoundedOutput(t *testing.T) {
	const sr = 44100.0
	ops := newTestOps(sr)
	scratch := NewScratch(512)
	var fb [6][2]float64
	enabled := [6]bool{true, true, true, true, true, true}

	out := Render(&Topologies[31], ops, 0, &fb, nil, nil, enabled, scratch)
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1 {
			t.Fatalf("non-finite or out-of-range sample: %f", v)
		}
	}
}

// TestFeedbackOperatorDoesNotExplode exercises the algorithm-level
// render path directly; see TestFeedbackOperatorRescaleStaysAtCarrierLoudness
// in internal/synth/synth_test.go for the end-to-end version that drives
// a real note_on/Render through internal/synth and checks the literal
// 90%-below-0.99 bound.
func TestFeedbackOperatorDoesNotExplode(t *testing.T) {
	const sr = 44100.0
	ops := newTestOps(sr)
	scratch := NewScratch(512)
	var fb [6][2]float64
	enabled := [6]bool{true, true, true, true, true, true}

	out := Render(&Topologies[31], ops, 7, &fb, nil, nil, enabled, scratch)
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite sample: %f", v)
		}
	}
}

func TestDisabledOperatorIsSilenced(t *testing.T) {
	const sr = 44100.0
	ops := newTestOps(sr)
	scratch := NewScratch(512)
	var fb [6][2]float64
	enabled := [6]bool{false, true, true, true, true, true}

	out := Render(&Topologies[31], ops, 0, &fb, nil, nil, enabled, scratch)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("carrier op0 disabled but output non-zero: %f", v)
		}
	}
}
