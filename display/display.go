// Package display presents a running grid on a terminal or a window and turns
// user input into step and randomize triggers.
package display

import "github.com/sheikhrachel/go-life/render"

// Controller is the simulation as seen by a front-end
type Controller interface {
	// Step advances one generation
	Step()
	// Randomize starts over from a fresh random population
	Randomize()
	// Current returns the generation to draw
	Current() render.Source
	// Status returns a one-line summary of the run
	Status() string
	// Done reports whether the run has reached its generation limit
	Done() bool
}
