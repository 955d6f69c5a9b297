//go:build ebiten

package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
)

// window adapts a Controller to the ebiten.Game interface
type window struct {
	ctrl        Controller
	renderer    *render.Renderer
	interactive bool

	img     *ebiten.Image
	touches []ebiten.TouchID
}

// RunWindow opens a window and blocks until it is closed
func RunWindow(ctrl Controller, renderer *render.Renderer, cfg WindowConfig) error {
	w := &window{
		ctrl:        ctrl,
		renderer:    renderer,
		interactive: cfg.Interactive,
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS())

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrapf(model.ErrDeviceUnavailable, "[RunWindow] %v", err)
	}
	return nil
}

// Update handles input and advances the simulation
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.ctrl.Randomize()
		return nil
	}

	if w.triggered() || !w.interactive {
		w.ctrl.Step()
	}
	if w.ctrl.Done() {
		return ebiten.Termination
	}
	return nil
}

// triggered reports a key press, click or new touch since the last tick
func (w *window) triggered() bool {
	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	return len(w.touches) > 0 ||
		inpututil.IsKeyJustPressed(ebiten.KeyN) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw presents the current generation scaled to the whole screen
func (w *window) Draw(screen *ebiten.Image) {
	size := screen.Bounds().Size()
	frame := w.renderer.Render(w.ctrl.Current(), size)

	if w.img == nil || w.img.Bounds().Size() != size {
		w.img = ebiten.NewImage(size.X, size.Y)
	}
	w.img.WritePixels(frame.Pix)
	screen.DrawImage(w.img, nil)
}

// Layout lets the logical screen follow the window size
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(1, outsideWidth), max(1, outsideHeight)
}
