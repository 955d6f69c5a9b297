package model

import (
	"math"
	"math/rand/v2"
)

// liveExponent sets the initial population to round(cells^0.8)
const liveExponent = 0.8

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// LiveTarget returns how many cells Randomize tries to bring to life
func LiveTarget(width, height int) int {
	return int(math.Round(math.Pow(float64(width*height), liveExponent)))
}

// Randomize resets the generation counter and fills the current surface with a random population.
//
// Positions are drawn with replacement, so duplicates collapse and the
// resulting population can fall short of LiveTarget.
func (g *Grid) Randomize() {
	g.seq.reset()

	cur := g.surfaces[surfaceA]
	cur.clear()

	n := g.width * g.height
	for range LiveTarget(g.width, g.height) {
		cur.cells[g.rng.IntN(n)] = 1
	}
}
