// Package dx7fm implements a software six-operator FM synthesizer
// modeled on the Yamaha DX7: a fixed polyphonic voice pool driven by
// note and controller events, rendering through one of 32 fixed
// algorithm topologies per voice.
package dx7fm

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	intaudio "github.com/cbegin/dx7fm-go/internal/audio"
	intfx "github.com/cbegin/dx7fm-go/internal/effects"
	"github.com/cbegin/dx7fm-go/internal/preset"
	"github.com/cbegin/dx7fm-go/internal/synth"
)

// PlayerOption configures a Player at construction time.
type PlayerOption func(*playerConfig)

type playerConfig struct {
	polyphony   int
	blockSize   int
	preset      preset.Preset
	effectSpec  string
	sampleTap   func([]float32)
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{
		polyphony: synth.DefaultPolyphony,
		blockSize: 256,
		preset:    preset.Default(),
	}
}

// WithPolyphony overrides the voice pool size (default 16).
func WithPolyphony(n int) PlayerOption {
	return func(cfg *playerConfig) { cfg.polyphony = n }
}

// WithBlockSize overrides the internal render block size (default 256 frames).
func WithBlockSize(n int) PlayerOption {
	return func(cfg *playerConfig) { cfg.blockSize = n }
}

// WithPreset sets the initial patch loaded into every voice.
func WithPreset(p preset.Preset) PlayerOption {
	return func(cfg *playerConfig) { cfg.preset = p }
}

// WithEffectChain installs a post-engine effect chain described by a
// semicolon-separated list of "type param,param,..." directives, e.g.
// "delay 250,0.4,0.2,0.3;reverb 0.5,0.7,0.25". Supported types: delay,
// reverb, chorus, distortion (or dist), eq, compressor (or comp).
func WithEffectChain(spec string) PlayerOption {
	return func(cfg *playerConfig) { cfg.effectSpec = spec }
}

// WithSampleTap installs a callback invoked with each generated stereo
// buffer. The callback runs on the audio thread; keep work brief and
// non-blocking.
func WithSampleTap(tap func([]float32)) PlayerOption {
	return func(cfg *playerConfig) { cfg.sampleTap = tap }
}

// Player drives a Synth with live audio output, an optional effects
// chain, and a master EQ, and exposes the engine's event surface.
type Player struct {
	mu         sync.Mutex
	synth      *synth.Synth
	sampleRate int
	blockSize  int
	audio      *intaudio.Player
	masterEQ   *intfx.EQ5Band
	volume     float64
}

// engineSource adapts a Synth's mono render output to the interleaved
// stereo float32 stream the audio backend expects, and applies the
// optional effect chain, master EQ, and sample tap.
type engineSource struct {
	synth     *synth.Synth
	mono      []float64
	effects   *intfx.Chain
	masterEQ  *intfx.EQ5Band
	sampleTap func([]float32)
}

func (s *engineSource) Process(dst []float32) {
	frames := len(dst) / 2
	if cap(s.mono) < frames {
		s.mono = make([]float64, frames)
	}
	s.mono = s.mono[:frames]

	out := s.synth.Render(frames)
	copy(s.mono, out)

	for i := 0; i < frames; i++ {
		l := float32(s.mono[i])
		r := l
		if s.effects != nil {
			l, r = s.effects.Process(l, r)
		}
		if s.masterEQ != nil {
			l, r = s.masterEQ.Process(l, r)
		}
		dst[i*2] = l
		dst[i*2+1] = r
	}
	if s.sampleTap != nil {
		s.sampleTap(dst)
	}
}

// NewPlayer creates a Player and starts its live audio output.
func NewPlayer(sampleRate int, opts ...PlayerOption) (*Player, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	cfg := defaultPlayerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.polyphony <= 0 {
		return nil, errors.New("polyphony must be positive")
	}
	if cfg.blockSize <= 0 {
		return nil, errors.New("blockSize must be positive")
	}

	s := synth.New(cfg.polyphony, float64(sampleRate), cfg.blockSize)
	s.LoadPreset(cfg.preset)

	source := &engineSource{
		synth:     s,
		effects:   buildEffectChain(cfg.effectSpec, sampleRate),
		masterEQ:  intfx.NewEQ5Band(sampleRate),
		sampleTap: cfg.sampleTap,
	}

	backend, err := intaudio.NewPlayer(sampleRate, source)
	if err != nil {
		return nil, err
	}
	backend.Play()

	return &Player{
		synth:      s,
		sampleRate: sampleRate,
		blockSize:  cfg.blockSize,
		audio:      backend,
		masterEQ:   source.masterEQ,
		volume:     1,
	}, nil
}

// NoteOn triggers a note (MIDI note number, velocity 0..127).
func (p *Player) NoteOn(note, velocity int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.NoteOn(note, velocity)
}

// NoteOff releases a held note. Releasing an unheld note is a no-op.
func (p *Player) NoteOff(note int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.NoteOff(note)
}

// AllNotesOff releases every held note, letting release stages decay naturally.
func (p *Player) AllNotesOff() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.AllNotesOff()
}

// Panic immediately silences every voice with no release tail.
func (p *Player) Panic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.Panic()
}

// PitchBend sets the pitch bend ratio applied to every voice (1.0 = no bend).
func (p *Player) PitchBend(ratio float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.PitchBend(ratio)
}

// ModWheel sets the mod wheel value (0..1) applied as extra LFO depth.
func (p *Player) ModWheel(value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.ModWheel(value)
}

// OperatorEnable mutes or unmutes operator opIndex (0..5) across all voices.
func (p *Player) OperatorEnable(opIndex int, enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.OperatorEnable(opIndex, enabled)
}

// LoadPreset loads a new patch into every voice at once (notes sounding
// at that moment fall silent) and uses it for subsequently allocated voices.
func (p *Player) LoadPreset(pr preset.Preset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synth.LoadPreset(pr)
}

// VoiceStatus reports the current state of every voice in the pool.
func (p *Player) VoiceStatus() []synth.VoiceStatusEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.synth.VoiceStatus()
}

// ActiveVoiceCount reports how many voices are currently sounding.
func (p *Player) ActiveVoiceCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.synth.ActiveVoiceCount()
}

// SetMasterVolume sets the engine's master gain to volume, clamped to
// [0,1]; it replaces the engine's default gain of 0.8 rather than
// scaling it. MasterVolume reports 1.0 until the first call.
func (p *Player) SetMasterVolume(volume float64) {
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
	p.synth.SetMasterGain(volume)
}

// MasterVolume returns the current runtime volume scalar.
func (p *Player) MasterVolume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetEQBand sets the gain for a master EQ band (0-4). 1.0 = unity.
// Band frequencies: 0=<200Hz, 1=200-800Hz, 2=800-2.5kHz, 3=2.5-8kHz, 4=>8kHz.
// This takes effect immediately on the audio thread (lock-free).
func (p *Player) SetEQBand(band int, gain float32) {
	p.masterEQ.SetGain(band, gain)
}

// EQBand returns the current gain for a master EQ band (0-4).
func (p *Player) EQBand(band int) float32 {
	return p.masterEQ.Gain(band)
}

// Pause suspends audio output without affecting voice/envelope state.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Pause()
	}
}

// Resume resumes audio output after Pause.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Play()
	}
}

// Stop tears down the live audio backend. The Player must not be used afterward.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio == nil {
		return nil
	}
	err := p.audio.Stop()
	p.audio = nil
	return err
}

// PlaybackPosition returns the current output position of the audio
// driver in samples, i.e. what the listener actually hears right now.
func (p *Player) PlaybackPosition() int64 {
	p.mu.Lock()
	a := p.audio
	p.mu.Unlock()
	if a == nil {
		return 0
	}
	return int64(a.Position().Seconds() * float64(p.sampleRate))
}

// buildEffectChain parses a semicolon-separated "type param,param,..."
// directive list into an effect chain. Returns nil if spec is empty or
// names no recognized effect.
func buildEffectChain(spec string, sampleRate int) *intfx.Chain {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil
	}
	chain := intfx.NewChain()
	added := false
	for _, directive := range strings.Split(spec, ";") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}
		parts := strings.SplitN(directive, " ", 2)
		effectType := strings.ToLower(strings.TrimSpace(parts[0]))
		var params []float64
		if len(parts) > 1 {
			for _, p := range strings.Split(parts[1], ",") {
				p = strings.TrimSpace(p)
				if v, err := strconv.ParseFloat(p, 64); err == nil {
					params = append(params, v)
				}
			}
		}
		if eff := createEffect(effectType, params, sampleRate); eff != nil {
			chain.Add(eff)
			added = true
		}
	}
	if !added {
		return nil
	}
	return chain
}

func createEffect(effectType string, params []float64, sampleRate int) intfx.Effector {
	getParam := func(idx int, def float64) float64 {
		if idx < len(params) {
			return params[idx]
		}
		return def
	}
	switch effectType {
	case "delay":
		return intfx.NewDelay(sampleRate,
			getParam(0, 250),          // delay ms
			float32(getParam(1, 0.4)), // feedback
			float32(getParam(2, 0.2)), // cross
			float32(getParam(3, 0.3)), // wet
		)
	case "reverb":
		return intfx.NewReverb(sampleRate,
			float32(getParam(0, 0.5)),  // room size
			float32(getParam(1, 0.7)),  // feedback
			float32(getParam(2, 0.25)), // wet
		)
	case "chorus":
		return intfx.NewChorus(sampleRate,
			float32(getParam(0, 15)),  // delay ms
			float32(getParam(1, 0.3)), // feedback
			float32(getParam(2, 3)),   // depth ms
			float32(getParam(3, 1.5)), // rate Hz
			float32(getParam(4, 0.4)), // wet
		)
	case "dist", "distortion":
		return intfx.NewDistortion(sampleRate,
			float32(getParam(0, 4)),    // pre gain
			float32(getParam(1, 0.5)),  // post gain
			float32(getParam(2, 8000)), // lpf cutoff
		)
	case "eq":
		return intfx.NewEQ3Band(sampleRate,
			float32(getParam(0, 1.0)),  // low gain
			float32(getParam(1, 1.0)),  // mid gain
			float32(getParam(2, 1.0)),  // high gain
			float32(getParam(3, 300)),  // low freq
			float32(getParam(4, 3000)), // high freq
		)
	case "comp", "compressor":
		return intfx.NewCompressor(sampleRate,
			float32(getParam(0, -20)), // threshold dB
			float32(getParam(1, 4)),   // ratio
			float32(getParam(2, 5)),   // attack ms
			float32(getParam(3, 100)), // release ms
			float32(getParam(4, 6)),   // makeup dB
		)
	}
	return nil
}
