package dx7fm

import (
	"encoding/binary"
	"math"

	"github.com/cbegin/dx7fm-go/internal/preset"
	"github.com/cbegin/dx7fm-go/internal/synth"
)

// NoteEvent is a timed note-on/note-off event for offline rendering.
// TimeSeconds is measured from the start of the render.
type NoteEvent struct {
	TimeSeconds float64
	Note        int
	Velocity    int // 0 means note-off
}

// RenderSamples renders a timed sequence of note events through a
// fresh Synth loaded with p, for the given duration, and returns
// interleaved stereo float32 samples. Events must be sorted by
// TimeSeconds; a fresh Synth is used so no voice/envelope state leaks
// between renders.
func RenderSamples(events []NoteEvent, p preset.Preset, sampleRate int, seconds float64, polyphony int) []float32 {
	const blockSize = 256
	if polyphony <= 0 {
		polyphony = synth.DefaultPolyphony
	}
	s := synth.New(polyphony, float64(sampleRate), blockSize)
	s.LoadPreset(p)

	totalFrames := int(float64(sampleRate) * seconds)
	out := make([]float32, totalFrames*2)

	frame := 0
	evIdx := 0
	for frame < totalFrames {
		n := blockSize
		if frame+n > totalFrames {
			n = totalFrames - frame
		}
		blockEndSeconds := float64(frame+n) / float64(sampleRate)
		for evIdx < len(events) && events[evIdx].TimeSeconds < blockEndSeconds {
			ev := events[evIdx]
			if ev.Velocity <= 0 {
				s.NoteOff(ev.Note)
			} else {
				s.NoteOn(ev.Note, ev.Velocity)
			}
			evIdx++
		}
		mono := s.Render(n)
		for i := 0; i < n; i++ {
			v := float32(mono[i])
			out[(frame+i)*2] = v
			out[(frame+i)*2+1] = v
		}
		frame += n
	}
	return out
}

// EncodeWAVFloat32LE wraps interleaved float32 PCM samples in a
// minimal 44-byte WAV header (IEEE float format, tag 3).
func EncodeWAVFloat32LE(samples []float32, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}
