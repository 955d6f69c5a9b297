package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is created with a non-positive width or height
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrDeviceUnavailable is returned when the host cannot provide a compute or display backend
	ErrDeviceUnavailable = errors.New("device unavailable")

	// ErrStepFailed is returned when a worker could not finish its share of a generation
	ErrStepFailed = errors.New("step failed")
)
