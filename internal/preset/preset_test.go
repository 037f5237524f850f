package preset

import "testing"

func TestDefaultIsSingleCarrier(t *testing.T) {
	p := Default()
	if p.Operators[0].OutputLevel != 99 {
		t.Fatalf("op1 should be full level carrier")
	}
	for i := 1; i < 6; i++ {
		if p.Operators[i].OutputLevel != 0 {
			t.Fatalf("op%d should be silent in default preset", i+1)
		}
	}
}

func TestDecodeClampsOutOfRangeFields(t *testing.T) {
	m := map[string]any{
		"algorithm": 99,
		"feedback":  8,
		"op1": map[string]any{
			"output_level": 500,
			"detune":       -99,
		},
	}
	p := Decode(m)
	if p.Algorithm != 99%32 {
		t.Fatalf("algorithm should wrap via modulo during clamp; got %d", p.Algorithm)
	}
	if p.Feedback != 7 {
		t.Fatalf("feedback 8 should clamp to 7, got %d", p.Feedback)
	}
	if p.Operators[0].OutputLevel != 99 {
		t.Fatalf("output_level 500 should clamp to 99, got %d", p.Operators[0].OutputLevel)
	}
	if p.Operators[0].Detune != -7 {
		t.Fatalf("detune -99 should clamp to -7, got %d", p.Operators[0].Detune)
	}
}

func TestDecodeFillsDefaultsForMissingFields(t *testing.T) {
	p := Decode(map[string]any{})
	d := Default()
	if p.Algorithm != d.Algorithm || p.Feedback != d.Feedback {
		t.Fatalf("empty decode should match defaults")
	}
}

func TestFactoryPresetsAreValid(t *testing.T) {
	for name, p := range Factory() {
		if p.Algorithm < 0 || p.Algorithm > 31 {
			t.Errorf("%s: algorithm out of range: %d", name, p.Algorithm)
		}
		if p.Feedback < 0 || p.Feedback > 7 {
			t.Errorf("%s: feedback out of range: %d", name, p.Feedback)
		}
		for i, op := range p.Operators {
			if op.Coarse < 0 || op.Coarse > 31 {
				t.Errorf("%s op%d: coarse out of range: %d", name, i+1, op.Coarse)
			}
			if op.Detune < -7 || op.Detune > 7 {
				t.Errorf("%s op%d: detune out of range: %d", name, i+1, op.Detune)
			}
			if op.KLSBreakpoint < 0 || op.KLSBreakpoint > 127 {
				t.Errorf("%s op%d: breakpoint out of range: %d", name, i+1, op.KLSBreakpoint)
			}
			for _, r := range op.Rates {
				if r < 0 || r > 99 {
					t.Errorf("%s op%d: rate out of range: %d", name, i+1, r)
				}
			}
		}
	}
}

func TestFactoryContainsCompleteROM1ABank(t *testing.T) {
	bank := Factory()
	if len(bank) != 33 { // 32 ROM1A voices + INIT VOICE
		t.Fatalf("expected 33 factory presets, got %d", len(bank))
	}
	for _, name := range []string{"BRASS   1", "PIANO   1", "E.PIANO 1", "BELLS", "INIT VOICE"} {
		if _, ok := bank[name]; !ok {
			t.Errorf("expected factory preset %q", name)
		}
	}
}
