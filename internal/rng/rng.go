// Package rng implements a small, allocation-free, deterministic random
// source for audio-thread use (LFO sample-and-hold), grounded in the
// splitmix64 generator design: a counter-based generator seeded once
// at construction so tests are reproducible.
package rng

// SplitMix64 is a minimal counter-based PRNG. The zero value is usable
// but Seed should be called once to diversify streams across voices.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a generator seeded with the given value.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Seed reseeds the generator.
func (s *SplitMix64) Seed(seed uint64) { s.state = seed }

// Next returns the next uint64 in the stream, advancing state.
func (s *SplitMix64) Next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Float64 returns a uniform value in [-1, 1).
func (s *SplitMix64) Float64() float64 {
	const scale = 1.0 / (1 << 53)
	unit := float64(s.Next()>>11) * scale // [0, 1)
	return unit*2.0 - 1.0
}
