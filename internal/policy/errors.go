package policy

import "errors"

// Error definitions for the policy package.
var (
	// ErrNilConfig is returned when an engine is constructed without a
	// configuration.
	ErrNilConfig = errors.New("policy config is nil")

	// ErrDuplicateUnmountPath is returned when a config lists the same
	// unmount path twice.
	ErrDuplicateUnmountPath = errors.New("duplicate unmount path")

	// ErrEmptyUnmountPath is returned when an unmount entry has no path.
	ErrEmptyUnmountPath = errors.New("unmount entry has empty path")
)
