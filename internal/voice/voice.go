// Package voice implements a single DX7 polyphonic voice: six
// operators, one LFO, an algorithm/feedback selection, and the
// real-time controllers (pitch bend, mod wheel, per-operator mute)
// that apply to the note it is currently playing.
package voice

import (
	"math"

	"github.com/cbegin/dx7fm-go/internal/algorithm"
	"github.com/cbegin/dx7fm-go/internal/lfo"
	"github.com/cbegin/dx7fm-go/internal/operator"
	"github.com/cbegin/dx7fm-go/internal/preset"
	"github.com/cbegin/dx7fm-go/internal/rng"
)

// MIDINoteToFreq converts a MIDI note number to frequency in Hz (A4 =
// 440Hz at note 69).
func MIDINoteToFreq(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12.0)
}

// Voice is one playing (or idle) polyphonic slot.
type Voice struct {
	sampleRate float64

	operators [6]*operator.Operator
	lfo       *lfo.LFO
	rnd       *rng.SplitMix64

	algorithmIndex int
	feedback       int

	fbBuffers [6][2]float64

	note     int
	velocity int
	active   bool
	gate     bool
	age      int

	pitchBendRatio float64
	modWheel       float64
	opEnabled      [6]bool

	scratch        *algorithm.Scratch
	pitchModBuf    []float64
	ampModBuf      []float64
	freqRatioBuf   []float64
	blockSize      int
}

// New creates an idle Voice sized for blockSize-sample renders, seeded
// with rngSeed for deterministic LFO sample-and-hold.
func New(sampleRate float64, blockSize int, rngSeed uint64) *Voice {
	v := &Voice{
		sampleRate:     sampleRate,
		note:           -1,
		pitchBendRatio: 1.0,
		opEnabled:      [6]bool{true, true, true, true, true, true},
		rnd:            rng.NewSplitMix64(rngSeed),
		scratch:        algorithm.NewScratch(blockSize),
		pitchModBuf:    make([]float64, blockSize),
		ampModBuf:      make([]float64, blockSize),
		freqRatioBuf:   make([]float64, blockSize),
		blockSize:      blockSize,
	}
	v.LoadPreset(preset.Default())
	return v
}

// LoadPreset replaces the voice's algorithm, feedback, operators and
// LFO with freshly built ones. The gate flag is kept, but a note that is
// currently sounding is not carried over: the new operators start at
// zero phase with idle envelopes, so the voice is silent until the next
// GateOn. Callers typically reload before GateOn.
func (v *Voice) LoadPreset(p preset.Preset) {
	v.algorithmIndex = algorithm.Index(p.Algorithm)
	v.feedback = clampInt(p.Feedback, 0, 7)

	v.lfo = lfo.New(lfo.Waveform(p.LFO.Waveform), p.LFO.Speed, p.LFO.Delay, p.LFO.PMD, p.LFO.AMD, p.LFO.KeySync, v.sampleRate, v.rnd)

	for i := 0; i < 6; i++ {
		op := p.Operators[i]
		v.operators[i] = operator.New(operator.Params{
			RatioMode:           op.OscMode == preset.OscModeRatio,
			Coarse:              op.Coarse,
			Fine:                op.Fine,
			Detune:              op.Detune,
			OutputLevel:         op.OutputLevel,
			Rates:               op.Rates,
			Levels:              op.Levels,
			VelocitySensitivity: op.VelocitySensitivity,
			KeyRateScaling:      op.KeyRateScaling,
			KLS: operator.KeyboardLevelScaling{
				Breakpoint: op.KLSBreakpoint,
				LeftDepth:  op.KLSLeftDepth,
				RightDepth: op.KLSRightDepth,
				LeftCurve:  operator.Curve(op.KLSLeftCurve),
				RightCurve: operator.Curve(op.KLSRightCurve),
			},
		}, v.sampleRate)
	}
}

// GateOn triggers the voice for a new note.
func (v *Voice) GateOn(note, velocity int) {
	v.note = note
	v.velocity = velocity
	v.active = true
	v.gate = true
	v.age = 0

	baseFreq := MIDINoteToFreq(note)
	for i := range v.fbBuffers {
		v.fbBuffers[i] = [2]float64{0, 0}
	}
	for _, op := range v.operators {
		op.GateOn(note, velocity, baseFreq)
	}
	v.lfo.GateOn()
}

// GateOff releases the voice; envelopes enter Release. The voice
// remains active until all carrier envelopes reach Idle.
func (v *Voice) GateOff() {
	v.gate = false
	for _, op := range v.operators {
		op.GateOff()
	}
}

// SetPitchBend sets the pitch bend frequency multiplier (1.0 = center).
func (v *Voice) SetPitchBend(ratio float64) { v.pitchBendRatio = ratio }

// SetModWheel sets mod wheel depth, clamped to [0,1].
func (v *Voice) SetModWheel(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	v.modWheel = value
}

// SetOperatorEnabled mutes/unmutes one operator (0..5) globally.
func (v *Voice) SetOperatorEnabled(opIndex int, enabled bool) {
	if opIndex >= 0 && opIndex < 6 {
		v.opEnabled[opIndex] = enabled
	}
}

// Note returns the MIDI note currently assigned (-1 if none).
func (v *Voice) Note() int { return v.note }

// Age returns how many render cycles this voice has been active.
func (v *Voice) Age() int { return v.age }

// Gate reports whether the voice's note is currently held.
func (v *Voice) Gate() bool { return v.gate }

// ActiveFlag reports the voice's raw active flag (set at gate-on,
// cleared once rendering confirms silence).
func (v *Voice) ActiveFlag() bool { return v.active }

// Render writes n samples of this voice's output into out (len(out)
// must equal the voice's configured block size or less).
func (v *Voice) Render(out []float64) {
	n := len(out)
	if !v.active {
		for i := range out {
			out[i] = 0
		}
		return
	}
	v.age++

	pitchMod := v.pitchModBuf[:n]
	ampMod := v.ampModBuf[:n]
	v.lfo.Render(pitchMod, ampMod, v.modWheel)

	freqRatio := v.freqRatioBuf[:n]
	anyPitchMod := false
	for i := 0; i < n; i++ {
		if pitchMod[i] != 0 {
			anyPitchMod = true
			break
		}
	}
	for i := 0; i < n; i++ {
		ratio := v.pitchBendRatio
		if anyPitchMod {
			ratio *= math.Pow(2, pitchMod[i])
		}
		freqRatio[i] = ratio
	}

	topo := &algorithm.Topologies[v.algorithmIndex]
	mix := algorithm.Render(topo, v.operators, v.feedback, &v.fbBuffers, freqRatio, ampMod, v.opEnabled, v.scratch)
	copy(out, mix[:n])

	if !v.gate && !v.isActiveLocked() {
		v.active = false
	}
}

// IsActive reports whether the gate is held or any carrier operator's
// envelope is non-idle.
func (v *Voice) IsActive() bool {
	return v.isActiveLocked()
}

func (v *Voice) isActiveLocked() bool {
	if v.gate {
		return true
	}
	topo := &algorithm.Topologies[v.algorithmIndex]
	for i := 0; i < 6; i++ {
		if topo.Carriers[i] && v.operators[i].IsActive() {
			return true
		}
	}
	return false
}

// Reset hard-resets the voice to idle state: note cleared, envelopes
// and phases zeroed, feedback buffers cleared.
func (v *Voice) Reset() {
	v.note = -1
	v.velocity = 0
	v.active = false
	v.gate = false
	v.age = 0
	for _, op := range v.operators {
		op.Reset()
	}
	v.lfo.Reset()
	for i := range v.fbBuffers {
		v.fbBuffers[i] = [2]float64{0, 0}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
