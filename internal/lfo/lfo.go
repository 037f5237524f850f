// Package lfo implements the DX7's single low-frequency oscillator:
// six waveforms, key-sync, fade-in delay, and bipolar pitch / unipolar
// amplitude modulation outputs.
package lfo

import (
	"math"

	"github.com/cbegin/dx7fm-go/internal/rng"
)

// Waveform selects one of the six DX7 LFO shapes.
type Waveform int

const (
	Triangle Waveform = iota
	SawDown
	SawUp
	Square
	Sine
	SampleAndHold
)

// LFO is the DX7's single low-frequency oscillator, one instance per
// Voice.
type LFO struct {
	waveform Waveform
	speed    int // 0..99
	delay    int // 0..99
	pmd      int // 0..99
	amd      int // 0..99
	keySync  bool

	sampleRate   float64
	freq         float64
	delaySamples int

	sampleCounter int
	phase         float64
	shValue       float64
	rand          *rng.SplitMix64
}

// New creates an LFO with the given parameters and sample rate. rnd
// provides the deterministic sample-and-hold random source; pass a
// freshly-seeded generator per voice so S&H streams are reproducible
// across test runs without allocating on the audio thread.
func New(waveform Waveform, speed, delay, pmd, amd int, keySync bool, sampleRate float64, rnd *rng.SplitMix64) *LFO {
	l := &LFO{sampleRate: sampleRate, rand: rnd}
	l.SetParams(waveform, speed, delay, pmd, amd, keySync)
	return l
}

// SpeedToHz converts a 0..99 speed parameter to oscillator frequency.
func SpeedToHz(speed int) float64 {
	return 0.062 * math.Exp(float64(speed)*0.0684)
}

// DelayToSeconds converts a 0..99 delay parameter to fade-in seconds.
func DelayToSeconds(delay int) float64 {
	if delay == 0 {
		return 0
	}
	d := float64(delay)
	return d * d * 0.0005
}

// SetParams replaces the LFO's static parameters without touching
// runtime phase/counter state.
func (l *LFO) SetParams(waveform Waveform, speed, delay, pmd, amd int, keySync bool) {
	l.waveform = waveform
	l.speed = clamp(speed, 0, 99)
	l.delay = clamp(delay, 0, 99)
	l.pmd = clamp(pmd, 0, 99)
	l.amd = clamp(amd, 0, 99)
	l.keySync = keySync
	l.freq = SpeedToHz(l.speed)
	l.delaySamples = int(math.Round(DelayToSeconds(l.delay) * l.sampleRate))
}

// GateOn resets runtime state for a new note. Phase resets only if
// key-sync is enabled.
func (l *LFO) GateOn() {
	if l.keySync {
		l.phase = 0
	}
	l.sampleCounter = 0
	l.shValue = 0
}

// Reset hard-resets all runtime state.
func (l *LFO) Reset() {
	l.phase = 0
	l.sampleCounter = 0
	l.shValue = 0
}

// Render fills pitchMod (bipolar) and ampMod (unipolar, 1.0 = no
// attenuation) with one block's worth of LFO modulation. extraPMD is
// an additional 0..1 PMD contribution (e.g. mod wheel).
func (l *LFO) Render(pitchMod, ampMod []float64, extraPMD float64) {
	n := len(pitchMod)
	phaseInc := l.freq / l.sampleRate

	effectivePMD := math.Min(99, float64(l.pmd)+extraPMD*99)
	pmdScale := effectivePMD / 99
	amdScale := float64(l.amd) / 99

	phase := l.phase
	counter := l.sampleCounter
	for i := 0; i < n; i++ {
		raw := l.waveformValue(phase)

		if l.delaySamples > 0 {
			fade := float64(counter) / float64(l.delaySamples)
			if fade < 0 {
				fade = 0
			} else if fade > 1 {
				fade = 1
			}
			raw *= fade
		}

		pitchMod[i] = raw * pmdScale
		ampMod[i] = 1 - amdScale*(1-raw)*0.5

		prevPhase := phase
		phase += phaseInc
		for phase >= 1.0 {
			phase -= 1.0
		}
		if l.waveform == SampleAndHold && phase < prevPhase {
			l.shValue = l.rand.Float64()
		}
		counter++
	}
	l.phase = phase
	l.sampleCounter = counter
}

func (l *LFO) waveformValue(phase float64) float64 {
	switch l.waveform {
	case Sine:
		return math.Sin(2 * math.Pi * phase)
	case Triangle:
		return -(2*math.Abs(2*phase-1) - 1)
	case SawDown:
		return 1 - 2*phase
	case SawUp:
		return 2*phase - 1
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case SampleAndHold:
		return l.shValue
	}
	return 0
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
