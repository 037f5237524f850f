// Package operator implements a single DX7 FM operator: a sine
// oscillator driven by a phase accumulator, gated through an Envelope,
// with keyboard level scaling, velocity sensitivity, and an optional
// self-feedback render path.
package operator

import (
	"math"

	"github.com/cbegin/dx7fm-go/internal/envelope"
)

const (
	twoPi              = 2 * math.Pi
	maxModulationIndex = 13.0
	detuneCentsPerStep = 1.018
)

var outputLevelAmp [100]float64

func init() {
	for l := 0; l < 100; l++ {
		if l == 0 {
			outputLevelAmp[l] = 0
			continue
		}
		db := float64(99-l) * 0.75
		outputLevelAmp[l] = math.Pow(10, -db/20)
	}
}

// OutputLevelToAmplitude converts a 0..99 output level to linear
// amplitude across a ~74dB range.
func OutputLevelToAmplitude(level int) float64 {
	return outputLevelAmp[clamp(level, 0, 99)]
}

// OutputLevelToModIndex converts output level to a modulation index in
// radians (amplitude * 13.0).
func OutputLevelToModIndex(level int) float64 {
	return OutputLevelToAmplitude(level) * maxModulationIndex
}

// ComputeFrequencyRatio implements the DX7 coarse/fine -> ratio mapping.
func ComputeFrequencyRatio(coarse, fine int) float64 {
	base := float64(coarse)
	if coarse == 0 {
		base = 0.5
	}
	return base * (1 + float64(fine)*0.01)
}

// DetuneMultiplier converts a -7..+7 detune step to a frequency multiplier.
func DetuneMultiplier(detune int) float64 {
	return math.Pow(2, float64(detune)*detuneCentsPerStep/1200)
}

// VelocityScale converts MIDI velocity and a 0..7 sensitivity into a
// linear scale factor.
func VelocityScale(velocity, sensitivity int) float64 {
	if sensitivity == 0 {
		return 1.0
	}
	floor := 1 - float64(sensitivity)/7
	norm := float64(velocity) / 127
	return floor + (1-floor)*norm
}

// Curve identifies a keyboard level scaling slope.
type Curve int

const (
	CurveNegLinear Curve = iota
	CurveNegExponential
	CurvePosExponential
	CurvePosLinear
)

// KeyboardLevelScaling scales operator output as a function of distance
// from a breakpoint note.
type KeyboardLevelScaling struct {
	Breakpoint int
	LeftDepth  int
	RightDepth int
	LeftCurve  Curve
	RightCurve Curve
}

// ScaleFactor returns the linear multiplier for the given MIDI note.
func (k KeyboardLevelScaling) ScaleFactor(note int) float64 {
	dist := note - k.Breakpoint
	var depth int
	var curve Curve
	if dist < 0 {
		depth = k.LeftDepth
		curve = k.LeftCurve
	} else {
		depth = k.RightDepth
		curve = k.RightCurve
	}
	norm := math.Min(math.Abs(float64(dist))/48, 1.0)
	maxDB := float64(depth) * 0.75
	var db float64
	switch curve {
	case CurveNegLinear:
		db = -maxDB * norm
	case CurveNegExponential:
		db = -maxDB * norm * norm
	case CurvePosExponential:
		db = maxDB * norm * norm
	case CurvePosLinear:
		db = maxDB * norm
	}
	return math.Pow(10, db/20)
}

// KeyRateScaling adjusts an envelope rate by keyboard position.
func KeyRateScaling(rate, note, krs int) int {
	if krs == 0 {
		return clamp(rate, 0, 99)
	}
	adjustment := float64(krs) * math.Max(0, float64(note-36)) / 36
	return clamp(int(math.Round(float64(rate)+adjustment)), 0, 99)
}

// Params describes one operator's static patch parameters.
type Params struct {
	RatioMode           bool // true = ratio mode, false = fixed-frequency mode
	Coarse              int  // 0..31
	Fine                int  // 0..99
	Detune              int  // -7..7
	OutputLevel         int  // 0..99
	Rates               [4]int
	Levels              [4]int
	VelocitySensitivity int // 0..7
	KeyRateScaling      int // 0..7
	KLS                 KeyboardLevelScaling
}

// Operator is a single gated sine FM operator.
type Operator struct {
	params     Params
	sampleRate float64
	env        *envelope.Envelope

	phase     float64
	freq      float64
	amplitude float64
	modIndex  float64
}

// New creates an Operator with the given params and sample rate.
func New(params Params, sampleRate float64) *Operator {
	return &Operator{
		params:     params,
		sampleRate: sampleRate,
		env:        envelope.New(params.Rates, params.Levels, sampleRate),
		amplitude:  1.0,
		modIndex:   maxModulationIndex,
	}
}

// IsActive reports whether the operator's envelope is non-idle.
func (o *Operator) IsActive() bool { return o.env.IsActive() }

// GateOn triggers the operator for a new note.
func (o *Operator) GateOn(note, velocity int, baseFreq float64) {
	var freq float64
	if o.params.RatioMode {
		ratio := ComputeFrequencyRatio(o.params.Coarse, o.params.Fine)
		freq = baseFreq * ratio * DetuneMultiplier(o.params.Detune)
	} else {
		coarse := o.params.Coarse
		if coarse > 3 {
			coarse = 3
		}
		base := math.Pow(10, float64(coarse)) * (1 + float64(o.params.Fine)*0.01)
		freq = base * DetuneMultiplier(o.params.Detune)
	}
	o.freq = freq

	velScale := VelocityScale(velocity, o.params.VelocitySensitivity)
	klsScale := o.params.KLS.ScaleFactor(note)

	baseAmp := OutputLevelToAmplitude(o.params.OutputLevel)
	baseModIndex := OutputLevelToModIndex(o.params.OutputLevel)
	o.amplitude = baseAmp * velScale * klsScale
	o.modIndex = baseModIndex * velScale * klsScale

	o.phase = 0

	var scaledRates [4]int
	for i, r := range o.params.Rates {
		scaledRates[i] = KeyRateScaling(r, note, o.params.KeyRateScaling)
	}
	o.env.SetParams(scaledRates, o.params.Levels)
	o.env.GateOn()
}

// GateOff releases the operator's envelope into Release.
func (o *Operator) GateOff() { o.env.GateOff() }

// Reset hard-resets phase and envelope.
func (o *Operator) Reset() {
	o.phase = 0
	o.env.Reset()
}

// CarrierAmplitude returns the cached per-note carrier amplitude.
func (o *Operator) CarrierAmplitude() float64 { return o.amplitude }

// ModIndex returns the cached per-note modulation index in radians.
func (o *Operator) ModIndex() float64 { return o.modIndex }

// Render writes len(out) samples, optionally summing modulation input
// (radians) and scaling per-sample phase increment by freqRatio.
// asCarrier selects whether output is scaled by carrier amplitude (true)
// or modulation index (false). envScratch is caller-owned scratch space
// of the same length as out, avoiding allocation on the audio thread.
func (o *Operator) Render(out, envScratch []float64, modulation, freqRatio []float64, asCarrier bool) {
	n := len(out)
	env := envScratch[:n]
	o.env.Render(env)

	baseInc := twoPi * o.freq / o.sampleRate
	phase := o.phase
	scale := o.modIndex
	if asCarrier {
		scale = o.amplitude
	}
	for i := 0; i < n; i++ {
		var inc float64
		if freqRatio != nil {
			inc = baseInc * freqRatio[i]
		} else {
			inc = baseInc
		}
		p := phase
		if modulation != nil {
			p += modulation[i]
		}
		out[i] = math.Sin(p) * env[i] * scale
		phase += inc
	}
	o.phase = math.Mod(phase, twoPi)
	if o.phase < 0 {
		o.phase += twoPi
	}
}

// RenderWithFeedback renders the designated feedback operator using a
// sample-by-sample self-modulation loop. fbBuf holds the two most
// recent output samples (fb0, fb1) and is updated in place.
func (o *Operator) RenderWithFeedback(out, envScratch []float64, feedbackLevel float64, fbBuf *[2]float64, freqRatio []float64) {
	n := len(out)
	env := envScratch[:n]
	o.env.Render(env)

	baseInc := twoPi * o.freq / o.sampleRate
	phase := o.phase
	fb0, fb1 := fbBuf[0], fbBuf[1]
	for i := 0; i < n; i++ {
		fb := feedbackLevel * (fb0 + fb1) * 0.5
		y := math.Sin(phase + fb)
		out[i] = y * env[i] * o.modIndex
		fb0, fb1 = fb1, y
		fr := 1.0
		if freqRatio != nil {
			fr = freqRatio[i]
		}
		phase += baseInc * fr
	}
	fbBuf[0], fbBuf[1] = fb0, fb1
	o.phase = math.Mod(phase, twoPi)
	if o.phase < 0 {
		o.phase += twoPi
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
