package display

import (
	"context"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
)

// Terminal paints the grid on a terminal, one character cell per pixel
type Terminal struct {
	screen   tcell.Screen
	renderer *render.Renderer
	pressed  bool
}

// NewTerminal takes over the terminal. Call Run to draw and Close to give it back.
func NewTerminal(renderer *render.Renderer) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrapf(model.ErrDeviceUnavailable, "[NewTerminal] creating screen: %v", err)
	}
	return newTerminal(screen, renderer)
}

func newTerminal(screen tcell.Screen, renderer *render.Renderer) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrapf(model.ErrDeviceUnavailable, "[NewTerminal] initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.Clear()

	return &Terminal{screen: screen, renderer: renderer}, nil
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run draws ctrl until the user quits, ctx ends or ctrl is done.
//
// Space, n or a click advance one generation, r re-randomizes, q or Esc quits.
// Unless interactive, a generation is also taken every frameRate.
func (t *Terminal) Run(ctx context.Context, ctrl Controller, frameRate time.Duration, interactive bool) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	var tick <-chan time.Time
	if !interactive {
		ticker := time.NewTicker(frameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	t.Draw(ctrl)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			ctrl.Step()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.handle(ev, ctrl) {
				return nil
			}
		}

		if ctrl.Done() {
			return nil
		}
		t.Draw(ctrl)
	}
}

// handle applies one event and reports whether the user asked to quit
func (t *Terminal) handle(ev tcell.Event, ctrl Controller) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return true
		case ev.Rune() == ' ' || ev.Rune() == 'n':
			ctrl.Step()
		case ev.Rune() == 'r':
			ctrl.Randomize()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.pressed {
			ctrl.Step()
		}
		t.pressed = down
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// Draw renders the current generation to the screen, keeping the bottom row for the status line
func (t *Terminal) Draw(ctrl Controller) {
	w, h := t.screen.Size()
	frame := t.renderer.Render(ctrl.Current(), image.Pt(w, h-1))

	for y := range frame.Rect.Dy() {
		for x := range frame.Rect.Dx() {
			c := frame.RGBAAt(x, y)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	status := []rune(ctrl.Status())
	for x := range w {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		t.screen.SetContent(x, h-1, r, nil, tcell.StyleDefault)
	}

	t.screen.Show()
}
