package model

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Step advances the grid by exactly one generation.
//
// Every cell of the next surface is computed from the current surface before
// the generation counter moves, so a reader never sees a partial generation.
// Step is not re-entrant and must not run concurrently with itself.
func (g *Grid) Step() {
	if err := g.step(); err != nil {
		log.Printf("[Step] generation %d not committed: %v", g.seq.Generation(), err)
	}
}

func (g *Grid) step() error {
	curIdx, nextIdx := g.seq.Roles()
	cur, next := g.surfaces[curIdx], g.surfaces[nextIdx]

	if err := g.dispatch(cur, next); err != nil {
		return err
	}

	g.seq.advance()
	return nil
}

// dispatch splits the rows into one band per worker and waits for all of them
func (g *Grid) dispatch(cur, next *Surface) error {
	if g.workers <= 1 {
		return stepRows(cur, next, 0, g.height)
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + g.workers - 1) / g.workers
	)

	for i := range g.workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			return stepRows(cur, next, startRow, endRow)
		})
	}

	return eg.Wait()
}

// stepRows writes rows [startRow, endRow) of next from cur
func stepRows(cur, next *Surface, startRow, endRow int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrStepFailed, "[stepRows] rows %d-%d: %v", startRow, endRow, fmt.Sprint(r))
		}
	}()

	w := cur.width
	for y := startRow; y < endRow; y++ {
		for x := range w {
			next.cells[y*w+x] = rules.NextState(cur.cells[y*w+x], cur.CountNeighbors(x, y))
		}
	}
	return nil
}
