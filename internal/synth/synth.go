// Package synth implements the polyphonic voice pool: note-on/off
// allocation and stealing, preset loading, and per-block audio mixing.
package synth

import (
	"github.com/cbegin/dx7fm-go/internal/preset"
	"github.com/cbegin/dx7fm-go/internal/voice"
)

// DefaultPolyphony matches the original DX7's 16-voice polyphony.
const DefaultPolyphony = 16

// Synth is a fixed pool of voices with note allocation and mixing.
type Synth struct {
	voices        []*voice.Voice
	noteToVoice   map[int]int
	currentPreset preset.Preset
	masterGain    float64
	mix           []float64
	voiceScratch  []float64
}

// New creates a Synth with the given polyphony, sample rate and block
// size. The voice pool is fixed for the lifetime of the Synth.
func New(polyphony int, sampleRate float64, blockSize int) *Synth {
	s := &Synth{
		voices:        make([]*voice.Voice, polyphony),
		noteToVoice:   make(map[int]int, polyphony),
		currentPreset: preset.Default(),
		masterGain:    0.8,
		mix:           make([]float64, blockSize),
		voiceScratch:  make([]float64, blockSize),
	}
	for i := range s.voices {
		s.voices[i] = voice.New(sampleRate, blockSize, uint64(i)*0x9E3779B97F4A7C15+1)
	}
	return s
}

// LoadPreset loads a preset/patch into every voice and remembers it so
// freshly-allocated voices start from it.
func (s *Synth) LoadPreset(p preset.Preset) {
	s.currentPreset = p
	for _, v := range s.voices {
		v.LoadPreset(p)
	}
}

// SetMasterGain sets the linear output gain, clamped to [0,1].
func (s *Synth) SetMasterGain(gain float64) {
	if gain < 0 {
		gain = 0
	} else if gain > 1 {
		gain = 1
	}
	s.masterGain = gain
}

// MasterGain returns the current master gain.
func (s *Synth) MasterGain() float64 { return s.masterGain }

// NoteOn triggers a note. velocity 0 is treated as note_off.
func (s *Synth) NoteOn(note, velocity int) {
	if velocity == 0 {
		s.NoteOff(note)
		return
	}

	if oldIdx, ok := s.noteToVoice[note]; ok {
		delete(s.noteToVoice, note)
		s.voices[oldIdx].GateOff()
	}

	idx := s.allocateVoice()

	oldNote := s.voices[idx].Note()
	if oldNote >= 0 {
		if mapped, ok := s.noteToVoice[oldNote]; ok && mapped == idx {
			delete(s.noteToVoice, oldNote)
		}
	}

	s.noteToVoice[note] = idx
	v := s.voices[idx]
	v.LoadPreset(s.currentPreset)
	v.GateOn(note, velocity)
}

// NoteOff releases a held note. Releasing an unknown note is a no-op.
func (s *Synth) NoteOff(note int) {
	idx, ok := s.noteToVoice[note]
	if !ok {
		return
	}
	delete(s.noteToVoice, note)
	s.voices[idx].GateOff()
}

// AllNotesOff releases every held note.
func (s *Synth) AllNotesOff() {
	for _, v := range s.voices {
		v.GateOff()
	}
	s.noteToVoice = make(map[int]int, len(s.voices))
}

// Panic immediately silences every voice (hard reset).
func (s *Synth) Panic() {
	for _, v := range s.voices {
		v.Reset()
	}
	s.noteToVoice = make(map[int]int, len(s.voices))
}

// PitchBend broadcasts a pitch bend ratio to every voice.
func (s *Synth) PitchBend(ratio float64) {
	for _, v := range s.voices {
		v.SetPitchBend(ratio)
	}
}

// ModWheel broadcasts a mod wheel value (0..1) to every voice.
func (s *Synth) ModWheel(value float64) {
	for _, v := range s.voices {
		v.SetModWheel(value)
	}
}

// OperatorEnable broadcasts a per-operator mute flag to every voice.
func (s *Synth) OperatorEnable(opIndex int, enabled bool) {
	for _, v := range s.voices {
		v.SetOperatorEnabled(opIndex, enabled)
	}
}

// Render mixes all active voices into an n-sample buffer, applies
// master gain, and clips to [-1,1].
func (s *Synth) Render(n int) []float64 {
	if n > len(s.mix) {
		s.mix = make([]float64, n)
	}
	mix := s.mix[:n]
	for i := range mix {
		mix[i] = 0
	}
	block := len(s.voiceScratch)
	for start := 0; start < n; start += block {
		end := start + block
		if end > n {
			end = n
		}
		scratch := s.voiceScratch[:end-start]
		for _, v := range s.voices {
			if v.ActiveFlag() || v.Gate() {
				v.Render(scratch)
				for i := range scratch {
					mix[start+i] += scratch[i]
				}
			}
		}
	}
	gain := s.masterGain
	for i := range mix {
		sample := mix[i] * gain
		if sample > 1 {
			sample = 1
		} else if sample < -1 {
			sample = -1
		}
		mix[i] = sample
	}
	return mix
}

// allocateVoice picks a target voice for a new note-on: first an idle
// voice, else the oldest released voice, else the oldest held voice.
func (s *Synth) allocateVoice() int {
	for i, v := range s.voices {
		if !v.ActiveFlag() {
			return i
		}
	}

	bestReleasedIdx, bestReleasedAge := -1, -1
	bestHeldIdx, bestHeldAge := -1, -1
	for i, v := range s.voices {
		if !v.Gate() {
			if v.Age() > bestReleasedAge {
				bestReleasedAge = v.Age()
				bestReleasedIdx = i
			}
		} else {
			if v.Age() > bestHeldAge {
				bestHeldAge = v.Age()
				bestHeldIdx = i
			}
		}
	}
	if bestReleasedIdx >= 0 {
		return bestReleasedIdx
	}
	if bestHeldIdx >= 0 {
		return bestHeldIdx
	}
	return 0
}

// ActiveVoiceCount reports how many voices are currently sounding.
func (s *Synth) ActiveVoiceCount() int {
	n := 0
	for _, v := range s.voices {
		if v.ActiveFlag() {
			n++
		}
	}
	return n
}

// VoiceStatusEntry describes one voice's state for UI/diagnostics.
type VoiceStatusEntry struct {
	Index  int
	Note   int
	Active bool
	Gate   bool
	Age    int
}

// VoiceStatus returns status information for all voices.
func (s *Synth) VoiceStatus() []VoiceStatusEntry {
	status := make([]VoiceStatusEntry, len(s.voices))
	for i, v := range s.voices {
		status[i] = VoiceStatusEntry{Index: i, Note: v.Note(), Active: v.ActiveFlag(), Gate: v.Gate(), Age: v.Age()}
	}
	return status
}

// Polyphony returns the fixed voice pool size.
func (s *Synth) Polyphony() int { return len(s.voices) }
