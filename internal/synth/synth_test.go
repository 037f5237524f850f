package synth

import (
	"math"
	"testing"

	"github.com/cbegin/dx7fm-go/internal/lfo"
	"github.com/cbegin/dx7fm-go/internal/preset"
)

func TestSilenceWithNoEvents(t *testing.T) {
	s := New(16, 44100, 256)
	out := s.Render(1024)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("expected silence, got %f", v)
		}
	}
}

func TestNoteOnProducesActiveVoice(t *testing.T) {
	s := New(16, 44100, 256)
	s.NoteOn(69, 127)
	if s.ActiveVoiceCount() != 1 {
		t.Fatalf("expected 1 active voice, got %d", s.ActiveVoiceCount())
	}
	out := s.Render(256)
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite sample: %f", v)
		}
	}
}

func TestVelocityZeroActsAsNoteOff(t *testing.T) {
	s := New(16, 44100, 256)
	s.NoteOn(69, 127)
	s.Render(256)
	s.NoteOn(69, 0)
	if s.ActiveVoiceCount() != 1 {
		t.Fatalf("velocity-0 note-on should not allocate a new voice")
	}
}

func TestNoteOffOfUnheldNoteIsNoop(t *testing.T) {
	s := New(16, 44100, 256)
	s.NoteOff(60) // should not panic or change state
	if s.ActiveVoiceCount() != 0 {
		t.Fatalf("expected no active voices")
	}
}

func TestPanicSilencesImmediately(t *testing.T) {
	s := New(16, 44100, 256)
	s.NoteOn(69, 127)
	s.Render(256)
	s.Panic()
	out := s.Render(256)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("expected exact zeros after panic, got %f", v)
		}
	}
	if s.ActiveVoiceCount() != 0 {
		t.Fatalf("expected zero active voices after panic")
	}
}

func TestVoiceStealingWithLimitedPolyphony(t *testing.T) {
	s := New(2, 44100, 256)
	s.NoteOn(60, 100)
	s.Render(256)
	s.NoteOn(62, 100)
	s.Render(256)
	s.NoteOn(64, 100)
	s.Render(256)

	if s.ActiveVoiceCount() != 2 {
		t.Fatalf("expected exactly 2 active voices, got %d", s.ActiveVoiceCount())
	}

	// Note 60 was stolen; releasing it should be a no-op (no mapping left).
	s.NoteOff(60)
	if s.ActiveVoiceCount() != 2 {
		t.Fatalf("releasing a stolen note's mapping should be a no-op")
	}

	s.NoteOff(62)
	s.NoteOff(64)
}

func TestPolyphonyNeverExceedsConfiguredPoolSize(t *testing.T) {
	const poly = 4
	s := New(poly, 44100, 256)
	for n := 60; n < 60+poly+4; n++ {
		s.NoteOn(n, 100)
		s.Render(256)
		if s.ActiveVoiceCount() > poly {
			t.Fatalf("active voice count %d exceeds polyphony %d", s.ActiveVoiceCount(), poly)
		}
	}
}

func TestTwoAllNotesOffCallsProduceIdenticalState(t *testing.T) {
	s := New(16, 44100, 256)
	s.NoteOn(69, 127)
	s.Render(256)
	s.AllNotesOff()
	first := s.ActiveVoiceCount()
	s.AllNotesOff()
	second := s.ActiveVoiceCount()
	if first != second {
		t.Fatalf("two all_notes_off calls should produce identical state")
	}
}

// allCarrierPreset builds a plain algorithm-32 patch (all six operators
// wired as carriers, no modulation, per-operator feedback on op6) with
// the given per-operator output levels, a flat full-sustain envelope,
// and 1:1 frequency ratios so a 440Hz note_on renders a 440Hz tone.
func allCarrierPreset(outputLevels [6]int, feedback int) preset.Preset {
	p := preset.Preset{
		Algorithm: 31, // algorithm 32: all carriers, no modulation
		Feedback:  feedback,
		LFO:       preset.LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
	}
	for i := range p.Operators {
		p.Operators[i] = preset.OperatorParams{
			OscMode:       preset.OscModeRatio,
			Coarse:        1,
			OutputLevel:   outputLevels[i],
			Rates:         [4]int{99, 99, 99, 99},
			Levels:        [4]int{99, 99, 99, 0},
			KLSBreakpoint: 60,
		}
	}
	return p
}

// positiveZeroCrossings returns the sub-sample times (seconds) of every
// positive-going zero crossing in samples, found by linear interpolation
// between the bracketing samples.
func positiveZeroCrossings(samples []float64, sampleRate float64) []float64 {
	var crossings []float64
	for i := 1; i < len(samples); i++ {
		if samples[i-1] < 0 && samples[i] >= 0 {
			frac := -samples[i-1] / (samples[i] - samples[i-1])
			crossings = append(crossings, (float64(i-1)+frac)/sampleRate)
		}
	}
	return crossings
}

// cycleFrequencies turns a series of positive-going zero-crossing times
// into per-cycle instantaneous frequency estimates, each timestamped at
// the midpoint of the cycle it was measured over.
func cycleFrequencies(crossings []float64) (freqs, times []float64) {
	for i := 1; i < len(crossings); i++ {
		period := crossings[i] - crossings[i-1]
		if period <= 0 {
			continue
		}
		freqs = append(freqs, 1.0/period)
		times = append(times, (crossings[i]+crossings[i-1])/2)
	}
	return freqs, times
}

func rms(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// TestFeedbackOperatorRescaleStaysAtCarrierLoudness checks that a
// self-feedback algorithm-32 render never exceeds [-1, 1] after
// clipping, and that at least 90% of samples stay strictly below 0.99:
// the feedback operator's rescale must not pin the output at the clip
// ceiling.
func TestFeedbackOperatorRescaleStaysAtCarrierLoudness(t *testing.T) {
	const sampleRate = 44100.0
	const n = 4096
	s := New(1, sampleRate, n)
	s.LoadPreset(allCarrierPreset([6]int{99, 99, 99, 99, 99, 99}, 7))
	s.NoteOn(69, 127)
	out := s.Render(n)

	under099 := 0
	for _, v := range out {
		av := math.Abs(v)
		if av > 1.0+1e-9 {
			t.Fatalf("sample %f exceeds clip bound of 1.0", v)
		}
		if av < 0.99 {
			under099++
		}
	}
	if frac := float64(under099) / float64(len(out)); frac < 0.9 {
		t.Fatalf("expected at least 90%% of samples below 0.99, got %.1f%%", frac*100)
	}
}

// TestAllCarrierAlgorithmRendersStableDominantFrequency renders six
// full-level carriers on algorithm 32 for note_on(69,127) and checks
// that the tone's dominant frequency is 440Hz +-1Hz and that its RMS
// level is stable (no runaway growth or decay) across successive blocks.
func TestAllCarrierAlgorithmRendersStableDominantFrequency(t *testing.T) {
	const sampleRate = 44100.0
	const n = 4096
	s := New(1, sampleRate, n)
	s.LoadPreset(allCarrierPreset([6]int{99, 99, 99, 99, 99, 99}, 0))
	s.NoteOn(69, 127)
	out := s.Render(n)

	// Skip the attack's first handful of samples; the envelope rate is
	// already near-instant (rate 99) but leave a small margin.
	settled := out[64:]
	crossings := positiveZeroCrossings(settled, sampleRate)
	if len(crossings) < 4 {
		t.Fatalf("too few zero crossings to estimate frequency: %d", len(crossings))
	}
	span := crossings[len(crossings)-1] - crossings[0]
	avgFreq := float64(len(crossings)-1) / span
	if math.Abs(avgFreq-440) > 1.0 {
		t.Fatalf("dominant frequency %.3fHz not within 1Hz of 440Hz", avgFreq)
	}

	const block = 512
	var levels []float64
	for start := 512; start+block <= len(out); start += block {
		levels = append(levels, rms(out[start:start+block]))
	}
	if len(levels) < 2 {
		t.Fatalf("not enough blocks to check RMS stability")
	}
	base := levels[0]
	for i, lvl := range levels[1:] {
		if base == 0 {
			t.Fatalf("zero RMS baseline, cannot assess stability")
		}
		if rel := math.Abs(lvl-base) / base; rel > 0.02 {
			t.Fatalf("block %d RMS %.6f deviates %.2f%% from block 0 RMS %.6f", i+1, lvl, rel*100, base)
		}
	}
}

// TestLFOVibratoSweepsPlusMinusOneOctave renders a single carrier on
// algorithm 32 with full pitch-mod depth (PMD 99) and no amplitude mod,
// and checks that its instantaneous frequency sweeps between roughly
// 220Hz and 880Hz (+-1 octave around 440Hz) at the LFO's own rate.
func TestLFOVibratoSweepsPlusMinusOneOctave(t *testing.T) {
	const sampleRate = 44100.0
	const n = int(2 * sampleRate) // 2s, comfortably more than one LFO cycle
	s := New(1, sampleRate, n)
	p := allCarrierPreset([6]int{99, 0, 0, 0, 0, 0}, 0)
	p.LFO.PMD = 99
	p.LFO.Speed = 35
	s.LoadPreset(p)
	s.NoteOn(69, 100)
	out := s.Render(n)

	crossings := positiveZeroCrossings(out, sampleRate)
	freqs, times := cycleFrequencies(crossings)
	if len(freqs) < 8 {
		t.Fatalf("too few cycles to track instantaneous frequency: %d", len(freqs))
	}

	minFreq, maxFreq := freqs[0], freqs[0]
	minIdx, maxIdx := 0, 0
	for i, f := range freqs {
		if f < minFreq {
			minFreq, minIdx = f, i
		}
		if f > maxFreq {
			maxFreq, maxIdx = f, i
		}
	}
	if minFreq > 260 {
		t.Fatalf("minimum instantaneous frequency %.2fHz is not near the expected 220Hz trough", minFreq)
	}
	if maxFreq < 750 {
		t.Fatalf("maximum instantaneous frequency %.2fHz is not near the expected 880Hz peak", maxFreq)
	}

	// The triangle LFO's extremes are half a cycle apart; use whichever
	// extremum comes first to estimate the half-period, then compare the
	// full period against this engine's own speed-to-Hz mapping.
	var halfPeriod float64
	if minIdx < maxIdx {
		halfPeriod = times[maxIdx] - times[minIdx]
	} else {
		halfPeriod = times[minIdx] - times[maxIdx]
	}
	observedPeriod := 2 * halfPeriod
	expectedPeriod := 1.0 / lfo.SpeedToHz(35)
	if rel := math.Abs(observedPeriod-expectedPeriod) / expectedPeriod; rel > 0.25 {
		t.Fatalf("observed LFO period %.3fs deviates %.1f%% from expected %.3fs", observedPeriod, rel*100, expectedPeriod)
	}
}
