package render

import "errors"

var (
	// ErrRendererAlreadyRunning is returned when starting a renderer that is already running
	ErrRendererAlreadyRunning = errors.New("renderer is already running")

	// ErrRendererNotStarted is returned when waiting on a renderer that hasn't been started
	ErrRendererNotStarted = errors.New("renderer has not been started")
)
