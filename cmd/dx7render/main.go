// Command dx7render renders a note sequence offline to a WAV file
// using the DX7-style FM engine.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	dx7fm "github.com/cbegin/dx7fm-go"
	"github.com/cbegin/dx7fm-go/internal/preset"
)

func main() {
	var (
		out        = flag.String("out", "out.wav", "output WAV file path")
		sampleRate = flag.Int("samplerate", 44100, "sample rate in Hz")
		seconds    = flag.Float64("seconds", 2.0, "render duration in seconds")
		polyphony  = flag.Int("polyphony", 16, "voice pool size")
		presetName = flag.String("preset", "INIT VOICE", "factory preset name")
		notes      = flag.String("notes", "60:100@0.0,60:0@1.0", "comma-separated note:velocity@time events")
	)
	flag.Parse()

	p, ok := preset.Factory()[*presetName]
	if !ok {
		log.Fatalf("unknown preset %q", *presetName)
	}

	events, err := parseNotes(*notes)
	if err != nil {
		log.Fatalf("parse notes: %v", err)
	}

	samples := dx7fm.RenderSamples(events, p, *sampleRate, *seconds, *polyphony)
	wav := dx7fm.EncodeWAVFloat32LE(samples, *sampleRate, 2)
	if err := os.WriteFile(*out, wav, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d frames, preset %q)", *out, len(samples)/2, *presetName)
}

// parseNotes parses "note:velocity@time,note:velocity@time,..." into
// timed note events, e.g. "60:100@0.0,60:0@1.0" for a one-second
// middle-C hold.
func parseNotes(spec string) ([]dx7fm.NoteEvent, error) {
	var events []dx7fm.NoteEvent
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		noteVel, timeStr, ok := strings.Cut(field, "@")
		if !ok {
			return nil, &strconvError{field}
		}
		noteStr, velStr, ok := strings.Cut(noteVel, ":")
		if !ok {
			return nil, &strconvError{field}
		}
		note, err := strconv.Atoi(strings.TrimSpace(noteStr))
		if err != nil {
			return nil, err
		}
		vel, err := strconv.Atoi(strings.TrimSpace(velStr))
		if err != nil {
			return nil, err
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(timeStr), 64)
		if err != nil {
			return nil, err
		}
		events = append(events, dx7fm.NoteEvent{TimeSeconds: t, Note: note, Velocity: vel})
	}
	return events, nil
}

type strconvError struct{ field string }

func (e *strconvError) Error() string {
	return "malformed note event " + strconv.Quote(e.field) + `, want "note:velocity@time"`
}
