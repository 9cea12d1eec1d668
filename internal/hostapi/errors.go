package hostapi

import "errors"

// Error definitions for the dispatcher boundary.
var (
	// ErrLayerActive is returned when a layer name is installed a second
	// time. Installing against an already-active layer is a configuration
	// error and must never happen during correct operation.
	ErrLayerActive = errors.New("hook layer already active")

	// ErrInvalidHookEntry is returned when a hook entry names a checkpoint
	// without carrying the matching callback, or carries more than one.
	ErrInvalidHookEntry = errors.New("invalid hook entry")

	// ErrUnknownCheckpoint is returned when a hook entry names a checkpoint
	// the dispatcher does not provide.
	ErrUnknownCheckpoint = errors.New("unknown checkpoint")
)
