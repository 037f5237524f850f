// Package envelope implements the DX7-style four-rate/four-level
// piecewise-linear envelope generator shared by every Operator.
package envelope

import "math"

// Stage identifies where an Envelope sits in its gate cycle.
type Stage int

const (
	Idle Stage = iota - 1
	Attack
	Decay1
	Decay2
	Release
)

const minStageSeconds = 0.0005

// rateTimes[r] is the time in seconds for a full 0->1 ramp at rate r.
var rateTimes [100]float64

// levelAmps[l] is the perceptual amplitude for level l.
var levelAmps [100]float64

func init() {
	for r := 0; r < 100; r++ {
		t := math.Pow(10, 4.6-float64(r)*0.0693) * 1e-3
		if t < minStageSeconds {
			t = minStageSeconds
		}
		rateTimes[r] = t
	}
	for l := 0; l < 100; l++ {
		switch l {
		case 0:
			levelAmps[l] = 0
		case 99:
			levelAmps[l] = 1
		default:
			levelAmps[l] = math.Pow(10, (float64(l-99)*0.4134)/20)
		}
	}
}

// RateToTime converts a 0..99 rate to the time in seconds of a full
// 0->1 transition.
func RateToTime(rate int) float64 {
	return rateTimes[clamp99(rate)]
}

// LevelToAmplitude converts a 0..99 level to perceptual amplitude.
func LevelToAmplitude(level int) float64 {
	return levelAmps[clamp99(level)]
}

func clamp99(v int) int {
	if v < 0 {
		return 0
	}
	if v > 99 {
		return 99
	}
	return v
}

// Envelope is a four-segment piecewise-linear amplitude generator.
type Envelope struct {
	rates  [4]int
	levels [4]int

	sampleRate float64

	stage       Stage
	current     float64
	increment   float64
	samplesLeft int
}

// New creates an Envelope with the given rates/levels (each 0..99) and
// sample rate.
func New(rates, levels [4]int, sampleRate float64) *Envelope {
	e := &Envelope{sampleRate: sampleRate}
	e.SetParams(rates, levels)
	e.stage = Idle
	return e
}

// SetParams replaces the rate/level table without touching gate state.
func (e *Envelope) SetParams(rates, levels [4]int) {
	for i := 0; i < 4; i++ {
		e.rates[i] = clamp99(rates[i])
		e.levels[i] = clamp99(levels[i])
	}
}

// Stage reports the current envelope stage.
func (e *Envelope) Stage() Stage { return e.stage }

// Value reports the current amplitude in [0,1].
func (e *Envelope) Value() float64 { return e.current }

// IsIdle reports whether the envelope has reached Idle.
func (e *Envelope) IsIdle() bool { return e.stage == Idle }

// IsActive is the complement of IsIdle.
func (e *Envelope) IsActive() bool { return e.stage != Idle }

// GateOn starts the envelope from L4's amplitude into Attack.
func (e *Envelope) GateOn() {
	e.current = LevelToAmplitude(e.levels[3])
	e.enterStage(Attack)
}

// GateOff moves a non-idle envelope into Release from wherever it is.
func (e *Envelope) GateOff() {
	if e.stage == Idle {
		return
	}
	e.enterStage(Release)
}

// Reset hard-resets the envelope to Idle with zero amplitude.
func (e *Envelope) Reset() {
	e.stage = Idle
	e.current = 0
	e.increment = 0
	e.samplesLeft = 0
}

// Render fills out with n amplitudes in [0,1], advancing state.
func (e *Envelope) Render(out []float64) {
	n := len(out)
	i := 0
	for i < n {
		if e.stage == Idle {
			for ; i < n; i++ {
				out[i] = e.current
			}
			return
		}
		if e.stage == Decay2 {
			// Sustain: ramp toward L3 then hold indefinitely.
			for ; i < n; i++ {
				if e.samplesLeft > 0 {
					e.current += e.increment
					e.samplesLeft--
					if e.samplesLeft == 0 {
						e.current = LevelToAmplitude(e.levels[2])
					}
				}
				out[i] = e.current
			}
			return
		}
		if e.samplesLeft <= 0 {
			e.advanceStage()
			continue
		}
		run := e.samplesLeft
		if run > n-i {
			run = n - i
		}
		for j := 0; j < run; j++ {
			e.current += e.increment
			out[i+j] = e.current
		}
		i += run
		e.samplesLeft -= run
		if e.samplesLeft <= 0 {
			e.advanceStage()
		}
	}
}

func (e *Envelope) advanceStage() {
	switch e.stage {
	case Attack:
		e.current = LevelToAmplitude(e.levels[0])
		e.enterStage(Decay1)
	case Decay1:
		e.current = LevelToAmplitude(e.levels[1])
		e.enterStage(Decay2)
	case Release:
		e.current = LevelToAmplitude(e.levels[3])
		e.stage = Idle
		e.increment = 0
		e.samplesLeft = 0
	}
}

func (e *Envelope) enterStage(stage Stage) {
	e.stage = stage
	var target float64
	var rateIdx int
	switch stage {
	case Attack:
		target = LevelToAmplitude(e.levels[0])
		rateIdx = e.rates[0]
	case Decay1:
		target = LevelToAmplitude(e.levels[1])
		rateIdx = e.rates[1]
	case Decay2:
		target = LevelToAmplitude(e.levels[2])
		rateIdx = e.rates[2]
	case Release:
		target = LevelToAmplitude(e.levels[3])
		rateIdx = e.rates[3]
	}
	fullTime := RateToTime(rateIdx)
	delta := target - e.current
	stageTime := fullTime * math.Abs(delta)
	minTime := 1.0 / e.sampleRate
	if stageTime < minTime {
		stageTime = minTime
	}
	samples := int(math.Round(stageTime * e.sampleRate))
	if samples < 1 {
		samples = 1
	}
	e.samplesLeft = samples
	e.increment = delta / float64(samples)
}
