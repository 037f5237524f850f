package envelope

import "testing"

func TestGateOnStartsAttackFromL4(t *testing.T) {
	e := New([4]int{99, 99, 99, 99}, [4]int{99, 99, 99, 0}, 44100)
	e.GateOn()
	if e.Stage() != Attack {
		t.Fatalf("expected Attack, got %v", e.Stage())
	}
	if e.Value() != LevelToAmplitude(0) {
		t.Fatalf("expected current=L4 amp, got %f", e.Value())
	}
}

func TestEnvelopeReachesSustainAndHolds(t *testing.T) {
	e := New([4]int{99, 99, 99, 99}, [4]int{99, 99, 50, 0}, 44100)
	e.GateOn()
	buf := make([]float64, 44100)
	for i := 0; i < 20; i++ {
		e.Render(buf)
	}
	if e.Stage() != Decay2 {
		t.Fatalf("expected Decay2, got %v", e.Stage())
	}
	want := LevelToAmplitude(50)
	if diff := e.Value() - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected sustain at %f, got %f", want, e.Value())
	}
	prev := e.Value()
	e.Render(buf)
	if e.Value() != prev {
		t.Fatalf("sustain should hold, got %f -> %f", prev, e.Value())
	}
}

func TestGateOffEntersReleaseAndDecaysToL4(t *testing.T) {
	e := New([4]int{99, 99, 99, 20}, [4]int{99, 99, 99, 0}, 44100)
	e.GateOn()
	buf := make([]float64, 4096)
	for i := 0; i < 40; i++ {
		e.Render(buf)
	}
	e.GateOff()
	if e.Stage() != Release {
		t.Fatalf("expected Release, got %v", e.Stage())
	}
	last := e.Value()
	for !e.IsIdle() {
		e.Render(buf)
		for _, v := range buf {
			if v > last+1e-9 {
				t.Fatalf("release amplitude increased: %f -> %f", last, v)
			}
			last = v
		}
		if last == 0 && e.IsIdle() {
			break
		}
	}
	if !e.IsIdle() {
		t.Fatalf("expected idle after release completes")
	}
}

func TestResetForcesIdleZero(t *testing.T) {
	e := New([4]int{99, 99, 99, 99}, [4]int{99, 99, 99, 0}, 44100)
	e.GateOn()
	e.Reset()
	if !e.IsIdle() || e.Value() != 0 {
		t.Fatalf("expected idle/zero after reset, got stage=%v value=%f", e.Stage(), e.Value())
	}
}

func TestRateAndLevelTableBoundaries(t *testing.T) {
	if LevelToAmplitude(0) != 0 {
		t.Fatalf("level 0 should be amplitude 0")
	}
	if LevelToAmplitude(99) != 1 {
		t.Fatalf("level 99 should be amplitude 1")
	}
	if RateToTime(99) > RateToTime(0) {
		t.Fatalf("higher rate should mean shorter time")
	}
}
