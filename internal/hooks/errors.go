package hooks

import "errors"

// Error definitions for the hooks package.
var (
	// ErrAlreadyInstalled is returned when Install is called more than once
	// on the same registry. Registration happens exactly once per layer
	// lifetime; a second attempt is a configuration error, never a silent
	// double-registration.
	ErrAlreadyInstalled = errors.New("hook registry already installed")

	// ErrNilEngine is returned when a registry is built without a policy
	// engine.
	ErrNilEngine = errors.New("policy engine is nil")

	// ErrNilDispatcher is returned when Install is given no dispatcher.
	ErrNilDispatcher = errors.New("dispatcher is nil")
)
