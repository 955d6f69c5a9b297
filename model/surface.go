package model

import (
	"crypto/md5"
	"fmt"
	"image"
)

// Surface is one dense row-major buffer of cell states (0 dead, 1 alive)
type Surface struct {
	width  int
	height int
	cells  []uint8
}

func newSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// At returns the state of a cell, cells off the grid are dead
func (s *Surface) At(x, y int) uint8 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.cells[y*s.width+x]
}

func (s *Surface) set(x, y int, state uint8) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.cells[y*s.width+x] = state
	}
}

func (s *Surface) clear() {
	clear(s.cells)
}

// CountNeighbors counts living cells in the Moore neighbourhood, edges do not wrap
func (s *Surface) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(s.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(s.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := s.cells[ny*s.width : (ny+1)*s.width]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx] != 0 {
				count++
			}
		}
	}

	return count
}

// Population returns the number of living cells
func (s *Surface) Population() (count int) {
	for _, c := range s.cells {
		if c != 0 {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the surface contents
func (s *Surface) Hash() string {
	h := md5.New()
	h.Write(s.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// BoundingBox returns the smallest rectangle holding every living cell.
// The rectangle is empty when nothing is alive.
func (s *Surface) BoundingBox() image.Rectangle {
	var (
		box   image.Rectangle
		valid bool
	)

	for y := range s.height {
		for x := range s.width {
			if s.cells[y*s.width+x] == 0 {
				continue
			}
			if !valid {
				box = image.Rect(x, y, x+1, y+1)
				valid = true
				continue
			}
			box.Min.X = min(box.Min.X, x)
			box.Max.X = max(box.Max.X, x+1)
			box.Min.Y = min(box.Min.Y, y)
			box.Max.Y = max(box.Max.Y, y+1)
		}
	}

	return box
}
