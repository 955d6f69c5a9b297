package display

import "time"

// WindowConfig sizes and paces the window front-end
type WindowConfig struct {
	Title       string
	Width       int
	Height      int
	FrameRate   time.Duration
	Interactive bool
}

// TPS converts the frame rate into ticks per second, at least one
func (c WindowConfig) TPS() int {
	if c.FrameRate <= 0 {
		return 60
	}
	return max(1, int(time.Second/c.FrameRate))
}
