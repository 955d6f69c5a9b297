//go:build !ebiten

package display

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
)

// RunWindow reports that the window front-end was not compiled in
func RunWindow(Controller, *render.Renderer, WindowConfig) error {
	return errors.Wrap(model.ErrDeviceUnavailable, "[RunWindow] rebuild with -tags ebiten for the window front-end")
}
