package model

import (
	"image"
	"math/rand/v2"
	"runtime"

	"github.com/pkg/errors"
)

// Grid is the game board: two equally sized surfaces whose read and write
// roles alternate with every generation
type Grid struct {
	width    int
	height   int
	surfaces [2]*Surface
	seq      Sequencer
	workers  int
	rng      *rand.Rand
}

// Option configures a Grid at construction
type Option func(*Grid)

// WithWorkers sets how many goroutines evaluate a step, 1 runs it serially
func WithWorkers(n int) Option {
	return func(g *Grid) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithSeed makes Randomize reproducible
func WithSeed(seed uint64) Option {
	return func(g *Grid) {
		g.rng = newRNG(seed)
	}
}

// NewGrid creates a grid with the specified dimensions
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}

	g := &Grid{
		width:    width,
		height:   height,
		surfaces: [2]*Surface{newSurface(width, height), newSurface(width, height)},
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newRNG(rand.Uint64())
	}

	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// CurrentGeneration returns the number of steps since the last reset
func (g *Grid) CurrentGeneration() uint64 {
	return g.seq.Generation()
}

// Current returns a read-only view of the current surface.
// The view must not be held across a call to Step.
func (g *Grid) Current() View {
	cur, _ := g.seq.Roles()
	return View{s: g.surfaces[cur]}
}

// Seed resets the generation counter and replaces the current population with the given cells
func (g *Grid) Seed(alive []image.Point) {
	g.seq.reset()
	cur := g.surfaces[surfaceA]
	cur.clear()
	for _, p := range alive {
		cur.set(p.X, p.Y, 1)
	}
}

// View is a read-only window onto one surface
type View struct {
	s *Surface
}

// Width returns the number of columns
func (v View) Width() int { return v.s.width }

// Height returns the number of rows
func (v View) Height() int { return v.s.height }

// At returns the state of a cell, 0 or 1
func (v View) At(x, y int) uint8 { return v.s.At(x, y) }

// Alive reports whether a cell is alive
func (v View) Alive(x, y int) bool { return v.s.At(x, y) != 0 }

// Population returns the number of living cells
func (v View) Population() int { return v.s.Population() }

// Hash returns a digest of the cell states
func (v View) Hash() string { return v.s.Hash() }

// BoundingBox returns the rectangle enclosing every living cell
func (v View) BoundingBox() image.Rectangle { return v.s.BoundingBox() }

// LiveCells lists the coordinates of every living cell in row-major order
func (v View) LiveCells() []image.Point {
	var cells []image.Point
	for y := range v.s.height {
		for x := range v.s.width {
			if v.s.cells[y*v.s.width+x] != 0 {
				cells = append(cells, image.Pt(x, y))
			}
		}
	}
	return cells
}
