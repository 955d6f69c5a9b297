package render

import (
	"image"
	"sync"
)

// imagePool recycles grid-resolution scratch images between renders
type imagePool struct {
	pool sync.Pool
}

func newImagePool() *imagePool {
	return &imagePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &image.RGBA{}
			},
		},
	}
}

// Get retrieves an image from the pool, resizing it to w x h if needed
func (p *imagePool) Get(w, h int) *image.RGBA {
	img := p.pool.Get().(*image.RGBA)
	if img.Rect.Dx() != w || img.Rect.Dy() != h {
		*img = *image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return img
}

// Put returns an image to the pool
func (p *imagePool) Put(img *image.RGBA) {
	p.pool.Put(img)
}
