package random

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniformly distributed floats.
type Source interface {
	// Uniform returns a value in [min, max]. When min == max it returns min.
	Uniform(min, max float64) float64
}

// Seeded is a Source backed by a PCG generator. Equal seeds yield equal sequences.
type Seeded struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded creates a Source seeded with seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform implements Source.
func (s *Seeded) Uniform(min, max float64) float64 {
	if min == max {
		return min
	}
	s.mu.Lock()
	f := s.rnd.Float64()
	s.mu.Unlock()
	return min + f*(max-min)
}

// Sequence replays fractions in [0, 1] scaled into the requested range, cycling when exhausted.
// It is meant for tests that need a predictable draw order.
type Sequence struct {
	mu        sync.Mutex
	fractions []float64
	next      int
}

// NewSequence creates a Sequence. With no fractions every draw returns the range midpoint.
func NewSequence(fractions ...float64) *Sequence {
	return &Sequence{fractions: fractions}
}

// Uniform implements Source.
func (s *Sequence) Uniform(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := 0.5
	if len(s.fractions) > 0 {
		f = s.fractions[s.next%len(s.fractions)]
		s.next++
	}
	return min + f*(max-min)
}
