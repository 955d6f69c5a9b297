package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
)

// Source is the read-only cell data a Renderer draws from
type Source interface {
	Width() int
	Height() int
	At(x, y int) uint8
}

var (
	// DefaultInactiveColor is applied to dead cells
	DefaultInactiveColor = color.RGBA{A: 0xff}
	// DefaultActiveColor is applied to living cells
	DefaultActiveColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Renderer turns a grid snapshot into a two-colour RGBA image
type Renderer struct {
	inactive color.RGBA
	active   color.RGBA
	pool     *imagePool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithInactiveColor sets the colour of dead cells
func WithInactiveColor(c color.RGBA) Option {
	return func(r *Renderer) { r.inactive = c }
}

// WithActiveColor sets the colour of living cells
func WithActiveColor(c color.RGBA) Option {
	return func(r *Renderer) { r.active = c }
}

// New returns a Renderer, black and white unless configured otherwise
func New(opts ...Option) *Renderer {
	r := &Renderer{
		inactive: DefaultInactiveColor,
		active:   DefaultActiveColor,
		pool:     newImagePool(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Colors returns the inactive and active colours
func (r *Renderer) Colors() (inactive, active color.RGBA) {
	return r.inactive, r.active
}

// Render draws src scaled to fill size. It never modifies src.
func (r *Renderer) Render(src Source, size image.Point) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	w, h := src.Width(), src.Height()
	base := r.pool.Get(w, h)
	defer r.pool.Put(base)

	r.fill(base, src)

	if size.X == w && size.Y == h {
		out := image.NewRGBA(base.Bounds())
		draw.Draw(out, out.Bounds(), base, image.Point{}, draw.Src)
		return out
	}
	return transform.Resize(base, size.X, size.Y, transform.NearestNeighbor)
}

// fill writes one pixel per cell into img
func (r *Renderer) fill(img *image.RGBA, src Source) {
	w, h := src.Width(), src.Height()
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := range w {
			c := r.inactive
			if src.At(x, y) != 0 {
				c = r.active
			}
			base := x * 4
			row[base+0] = c.R
			row[base+1] = c.G
			row[base+2] = c.B
			row[base+3] = c.A
		}
	}
}
