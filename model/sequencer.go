package model

import "sync/atomic"

const (
	surfaceA = 0
	surfaceB = 1
)

// Sequencer tracks the generation counter and derives the surface roles from its parity
type Sequencer struct {
	generation atomic.Uint64
}

// Generation returns the number of steps taken since the last reset
func (s *Sequencer) Generation() uint64 {
	return s.generation.Load()
}

// Roles returns the indexes of the current (read) and next (write) surfaces
func (s *Sequencer) Roles() (current, next int) {
	return roles(s.generation.Load())
}

func roles(generation uint64) (current, next int) {
	if generation%2 == 0 {
		return surfaceA, surfaceB
	}
	return surfaceB, surfaceA
}

func (s *Sequencer) advance() {
	s.generation.Add(1)
}

func (s *Sequencer) reset() {
	s.generation.Store(0)
}
