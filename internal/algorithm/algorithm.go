// Package algorithm holds the 32 fixed DX7 operator topologies and the
// data-driven renderer that walks them in dependency order.
package algorithm

import (
	"math"
	"sort"

	"github.com/cbegin/dx7fm-go/internal/operator"
)

// Topology describes one of the 32 fixed DX7 operator connection
// layouts: which operators are carriers, which modulate which, and
// which operator carries self-feedback.
type Topology struct {
	Carriers     [6]bool
	Modulations  [][2]int // [source, destination], 0-based
	FeedbackOp   int
	renderOrder  []int
}

// Topologies holds the 32 DX7 algorithms, 0-indexed (Topologies[0] is
// DX7 "algorithm 1"). Transcribed from the Yamaha DX7 operator's manual
// algorithm chart.
var Topologies [32]Topology

func carrierSet(idxs ...int) [6]bool {
	var c [6]bool
	for _, i := range idxs {
		c[i] = true
	}
	return c
}

func init() {
	Topologies = [32]Topology{
		{Carriers: carrierSet(0), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 2}, {2, 1}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 2}, {2, 1}, {1, 0}}, FeedbackOp: 1},
		{Carriers: carrierSet(0), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 0}, {2, 1}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 2}, {2, 1}, {1, 0}}, FeedbackOp: 3},
		{Carriers: carrierSet(0, 2), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 2}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 2), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 2}, {1, 0}}, FeedbackOp: 4},
		{Carriers: carrierSet(0), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 1}, {2, 1}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0), Modulations: [][2]int{{3, 2}, {5, 4}, {2, 1}, {4, 1}, {1, 0}}, FeedbackOp: 3},
		{Carriers: carrierSet(0), Modulations: [][2]int{{3, 2}, {5, 4}, {2, 1}, {4, 1}, {1, 0}}, FeedbackOp: 1},
		{Carriers: carrierSet(0, 3), Modulations: [][2]int{{5, 4}, {4, 3}, {2, 1}, {1, 0}}, FeedbackOp: 2},
		{Carriers: carrierSet(0, 3), Modulations: [][2]int{{5, 4}, {4, 3}, {2, 1}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 2), Modulations: [][2]int{{1, 0}, {5, 4}, {4, 3}, {3, 2}}, FeedbackOp: 1},
		{Carriers: carrierSet(0, 2), Modulations: [][2]int{{1, 0}, {5, 4}, {4, 3}, {3, 2}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 2), Modulations: [][2]int{{5, 4}, {4, 3}, {3, 2}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 2), Modulations: [][2]int{{1, 0}, {5, 4}, {4, 2}}, FeedbackOp: 1},
		{Carriers: carrierSet(0), Modulations: [][2]int{{5, 4}, {4, 0}, {3, 2}, {2, 0}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0), Modulations: [][2]int{{5, 4}, {4, 0}, {3, 0}, {2, 1}, {1, 0}}, FeedbackOp: 1},
		{Carriers: carrierSet(0), Modulations: [][2]int{{2, 1}, {5, 4}, {4, 3}, {1, 0}, {3, 0}}, FeedbackOp: 2},
		{Carriers: carrierSet(0, 1, 2, 3), Modulations: [][2]int{{5, 4}, {4, 3}, {4, 2}, {4, 1}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 3, 4), Modulations: [][2]int{{2, 1}, {1, 0}, {5, 4}, {5, 3}}, FeedbackOp: 2},
		{Carriers: carrierSet(0, 2, 3, 4), Modulations: [][2]int{{5, 4}, {5, 3}, {5, 2}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 1, 2, 3, 4), Modulations: [][2]int{{5, 4}, {5, 3}, {5, 2}, {5, 1}, {5, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 2, 3), Modulations: [][2]int{{5, 4}, {4, 3}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 1, 2, 3), Modulations: [][2]int{{5, 4}, {4, 3}, {4, 2}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 1, 2, 3), Modulations: [][2]int{{5, 4}, {4, 3}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 2, 3), Modulations: [][2]int{{5, 4}, {4, 3}, {5, 2}, {1, 0}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 3, 4), Modulations: [][2]int{{2, 1}, {1, 0}, {5, 4}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 2, 5), Modulations: [][2]int{{4, 3}, {3, 2}, {1, 0}}, FeedbackOp: 4},
		{Carriers: carrierSet(0, 1, 2, 4), Modulations: [][2]int{{5, 4}, {3, 2}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 1, 2, 5), Modulations: [][2]int{{4, 3}, {3, 2}}, FeedbackOp: 4},
		{Carriers: carrierSet(0, 1, 2, 3, 4), Modulations: [][2]int{{5, 4}}, FeedbackOp: 5},
		{Carriers: carrierSet(0, 1, 2, 3, 4, 5), Modulations: nil, FeedbackOp: 5},
	}

	for i := range Topologies {
		Topologies[i].renderOrder = buildRenderOrder(&Topologies[i])
		validateAcyclic(&Topologies[i])
	}
}

// RenderOrder returns the precomputed topological render order for a
// topology: every modulator appears before the operator it modulates,
// excluding the feedback operator's self-edge.
func (t *Topology) RenderOrder() []int { return t.renderOrder }

// ModulatorsOf returns the (non-self) operator indices that modulate dst.
func (t *Topology) ModulatorsOf(dst int) []int {
	var srcs []int
	for _, m := range t.Modulations {
		if m[1] == dst && m[0] != dst {
			srcs = append(srcs, m[0])
		}
	}
	return srcs
}

func buildRenderOrder(t *Topology) []int {
	modulatedBy := [6]map[int]bool{}
	for i := range modulatedBy {
		modulatedBy[i] = map[int]bool{}
	}
	for _, m := range t.Modulations {
		modulatedBy[m[1]][m[0]] = true
	}
	if t.FeedbackOp >= 0 {
		delete(modulatedBy[t.FeedbackOp], t.FeedbackOp)
	}

	inDegree := [6]int{}
	for i := 0; i < 6; i++ {
		inDegree[i] = len(modulatedBy[i])
	}

	var queue []int
	for i := 0; i < 6; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}
	sort.Ints(queue)

	var order []int
	for len(queue) > 0 {
		op := queue[0]
		queue = queue[1:]
		order = append(order, op)
		for dst := 0; dst < 6; dst++ {
			if modulatedBy[dst][op] {
				delete(modulatedBy[dst], op)
				inDegree[dst]--
				if inDegree[dst] == 0 {
					queue = append(queue, dst)
					sort.Ints(queue)
				}
			}
		}
	}

	present := map[int]bool{}
	for _, o := range order {
		present[o] = true
	}
	for i := 0; i < 6; i++ {
		if !present[i] {
			order = append(order, i)
		}
	}
	return order
}

// validateAcyclic asserts that, excluding the feedback operator's
// self-edge, the remaining modulation graph is a DAG: the render order
// must contain all six operators exactly once. Topology tables are
// static constants, so this runs once at init and panics on failure --
// an internal inconsistency here can only be a programming error.
func validateAcyclic(t *Topology) {
	if len(t.renderOrder) != 6 {
		panic("algorithm: topology render order did not resolve all six operators")
	}
	seen := [6]bool{}
	var pos [6]int
	for p, o := range t.renderOrder {
		seen[o] = true
		pos[o] = p
	}
	for i, ok := range seen {
		if !ok {
			panic("algorithm: topology render order missing operator " + string(rune('0'+i)))
		}
	}
	for _, m := range t.Modulations {
		if m[0] == t.FeedbackOp && m[1] == t.FeedbackOp {
			continue
		}
		if pos[m[0]] >= pos[m[1]] {
			panic("algorithm: topology modulation graph has a cycle besides the feedback self-edge")
		}
	}
}

// FeedbackLevels maps a DX7 feedback parameter (0..7) to radians.
var FeedbackLevels = [8]float64{
	0,
	math.Pi / 256,
	math.Pi / 128,
	math.Pi / 64,
	math.Pi / 32,
	math.Pi / 16,
	math.Pi / 8,
	math.Pi / 4,
}

// FeedbackParamToLevel converts a 0..7 feedback parameter to radians,
// clamping out-of-range input.
func FeedbackParamToLevel(param int) float64 {
	if param < 0 {
		param = 0
	}
	if param > 7 {
		param = 7
	}
	return FeedbackLevels[param]
}

// Index normalizes an algorithm index into 0..31 by wrapping modulo 32.
func Index(i int) int {
	i %= 32
	if i < 0 {
		i += 32
	}
	return i
}

// Scratch holds caller-owned, block-size-reused buffers for rendering
// one voice's six operators without allocating on the audio thread.
type Scratch struct {
	OpOutputs [6][]float64
	EnvBuf    []float64
	ModBuf    [6][]float64
	Mix       []float64
}

// NewScratch allocates scratch buffers sized for blockSize samples.
func NewScratch(blockSize int) *Scratch {
	s := &Scratch{EnvBuf: make([]float64, blockSize), Mix: make([]float64, blockSize)}
	for i := 0; i < 6; i++ {
		s.OpOutputs[i] = make([]float64, blockSize)
		s.ModBuf[i] = make([]float64, blockSize)
	}
	return s
}

// Render renders one block of audio for the given topology, six
// operators, feedback amount, per-operator feedback state, and optional
// per-sample freqRatio/ampMod blocks and per-operator enable flags. The
// mixed carrier output is written into scratch.Mix and also returned.
func Render(
	t *Topology,
	ops [6]*operator.Operator,
	feedbackParam int,
	fbBuffers *[6][2]float64,
	freqRatio []float64,
	ampMod []float64,
	opEnabled [6]bool,
	scratch *Scratch,
) []float64 {
	n := len(scratch.Mix)
	fbLevel := FeedbackParamToLevel(feedbackParam)

	var rendered [6]bool

	for _, opIdx := range t.RenderOrder() {
		op := ops[opIdx]
		modSources := t.ModulatorsOf(opIdx)

		modBuf := scratch.ModBuf[opIdx]
		var modInput []float64
		first := true
		for _, srcIdx := range modSources {
			if srcIdx == opIdx || !rendered[srcIdx] {
				continue
			}
			src := scratch.OpOutputs[srcIdx]
			if first {
				copy(modBuf, src[:n])
				modInput = modBuf
				first = false
			} else {
				for i := 0; i < n; i++ {
					modBuf[i] += src[i]
				}
			}
		}

		isFBOp := opIdx == t.FeedbackOp && fbLevel > 0
		isCarrier := t.Carriers[opIdx]

		out := scratch.OpOutputs[opIdx]
		if isFBOp {
			op.RenderWithFeedback(out, scratch.EnvBuf, fbLevel, &fbBuffers[opIdx], freqRatio)
			if isCarrier {
				modIdx := op.ModIndex()
				if modIdx > 1e-12 {
					rescale := op.CarrierAmplitude() / modIdx
					for i := 0; i < n; i++ {
						out[i] *= rescale
					}
				}
			}
		} else {
			op.Render(out, scratch.EnvBuf, modInput, freqRatio, isCarrier)
		}

		if isCarrier && ampMod != nil {
			for i := 0; i < n; i++ {
				out[i] *= ampMod[i]
			}
		}
		if !opEnabled[opIdx] {
			for i := 0; i < n; i++ {
				out[i] = 0
			}
		}

		rendered[opIdx] = true
	}

	mix := scratch.Mix
	for i := range mix {
		mix[i] = 0
	}
	numCarriers := 0
	for i := 0; i < 6; i++ {
		if t.Carriers[i] {
			numCarriers++
			out := scratch.OpOutputs[i]
			for i2 := 0; i2 < n; i2++ {
				mix[i2] += out[i2]
			}
		}
	}
	if numCarriers > 1 {
		norm := 1.0 / math.Sqrt(float64(numCarriers))
		for i := range mix {
			mix[i] *= norm
		}
	}
	return mix
}
