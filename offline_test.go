package dx7fm

import (
	"math"
	"testing"

	"github.com/cbegin/dx7fm-go/internal/preset"
)

func TestRenderSamplesProducesFiniteBoundedStereo(t *testing.T) {
	events := []NoteEvent{
		{TimeSeconds: 0.0, Note: 60, Velocity: 100},
		{TimeSeconds: 0.3, Note: 64, Velocity: 100},
		{TimeSeconds: 0.6, Note: 60, Velocity: 0},
		{TimeSeconds: 0.6, Note: 64, Velocity: 0},
	}
	out := RenderSamples(events, preset.Default(), 44100, 1.0, 8)
	if len(out) != 44100*2 {
		t.Fatalf("expected %d samples, got %d", 44100*2, len(out))
	}
	for _, s := range out {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			t.Fatalf("non-finite sample in render output")
		}
		if s > 1.0001 || s < -1.0001 {
			t.Fatalf("sample out of range: %f", s)
		}
	}
}

func TestRenderSamplesChannelsAreIdenticalMonoDownmix(t *testing.T) {
	events := []NoteEvent{{TimeSeconds: 0, Note: 69, Velocity: 127}}
	out := RenderSamples(events, preset.Default(), 44100, 0.1, 4)
	for i := 0; i < len(out); i += 2 {
		if out[i] != out[i+1] {
			t.Fatalf("left/right channels diverge at frame %d: %f != %f", i/2, out[i], out[i+1])
		}
	}
}

func TestRenderSamplesSilentWithNoEvents(t *testing.T) {
	out := RenderSamples(nil, preset.Default(), 44100, 0.1, 4)
	for _, s := range out {
		if s != 0 {
			t.Fatalf("expected silence with no events, got %f", s)
		}
	}
}

func TestEncodeWAVFloat32LEHeader(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 1}
	wav := EncodeWAVFloat32LE(samples, 48000, 2)
	if len(wav) != 44+len(samples)*4 {
		t.Fatalf("expected %d bytes, got %d", 44+len(samples)*4, len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" || string(wav[36:40]) != "data" {
		t.Fatalf("malformed WAV header: %q", wav[:44])
	}
}
