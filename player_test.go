package dx7fm

import "testing"

func TestPlayerMasterVolumeRuntimeAPI(t *testing.T) {
	pl, err := NewPlayer(48000)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	defer pl.Stop()

	if got := pl.MasterVolume(); got != 1 {
		t.Fatalf("default master volume = %v, want 1", got)
	}
	pl.SetMasterVolume(0.35)
	if got := pl.MasterVolume(); got != 0.35 {
		t.Fatalf("master volume = %v, want 0.35", got)
	}
	pl.SetMasterVolume(-2)
	if got := pl.MasterVolume(); got != 0 {
		t.Fatalf("master volume should clamp to 0, got %v", got)
	}
}

func TestPlayerNoteOnOffUpdatesVoiceCount(t *testing.T) {
	pl, err := NewPlayer(48000)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	defer pl.Stop()

	if pl.ActiveVoiceCount() != 0 {
		t.Fatalf("expected no active voices before note on")
	}
	pl.NoteOn(69, 100)
	if pl.ActiveVoiceCount() != 1 {
		t.Fatalf("expected 1 active voice after note on, got %d", pl.ActiveVoiceCount())
	}
	pl.Panic()
	if pl.ActiveVoiceCount() != 0 {
		t.Fatalf("expected no active voices after panic")
	}
}

func TestNewPlayerRejectsInvalidSampleRate(t *testing.T) {
	if _, err := NewPlayer(0); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
}

func TestWithEffectChainParsesKnownDirectives(t *testing.T) {
	chain := buildEffectChain("delay 250,0.4,0.2,0.3;reverb 0.5,0.7,0.25", 48000)
	if chain == nil {
		t.Fatalf("expected a non-nil chain for recognized directives")
	}
}

func TestWithEffectChainEmptySpecYieldsNilChain(t *testing.T) {
	if chain := buildEffectChain("", 48000); chain != nil {
		t.Fatalf("expected nil chain for empty spec")
	}
	if chain := buildEffectChain("bogus 1,2,3", 48000); chain != nil {
		t.Fatalf("expected nil chain when no directive is recognized")
	}
}
