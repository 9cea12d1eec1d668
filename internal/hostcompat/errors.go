package hostcompat

import (
	"errors"
	"fmt"
)

// Error definitions for the hostcompat package.
var (
	// ErrUnsupportedHost is returned when no host primitive exists for the
	// requested operation on this platform.
	ErrUnsupportedHost = errors.New("operation not supported on this host")

	// ErrCopyFault indicates that a caller-space source region failed
	// validation during a copy.
	ErrCopyFault = errors.New("caller memory region faulted")

	// ErrRangeNotReadable indicates that an address-range validation failed.
	ErrRangeNotReadable = errors.New("caller address range not readable")

	// ErrBufferTooSmall is returned when the destination buffer cannot hold
	// the requested byte count.
	ErrBufferTooSmall = errors.New("destination buffer too small")

	// ErrInvalidBitCount is returned for negative bitmap sizes.
	ErrInvalidBitCount = errors.New("invalid bit count")

	// ErrBitOutOfRange is returned when a bitmap operation addresses a bit
	// beyond the bitmap's capacity.
	ErrBitOutOfRange = errors.New("bit index out of range")

	// ErrProfileUnresolved indicates that a capability did not resolve to an
	// implementation. This is a build/configuration defect surfaced by
	// Profile.Validate, never by steady-state shim calls.
	ErrProfileUnresolved = errors.New("host capability unresolved")
)

// CopyFaultError carries the details of a failed caller-memory copy.
type CopyFaultError struct {
	Pid       int
	Addr      uintptr
	Requested int
	Copied    int
	Err       error
}

func (e *CopyFaultError) Error() string {
	return fmt.Sprintf("copy from pid %d addr %#x failed after %d/%d bytes: %v",
		e.Pid, e.Addr, e.Copied, e.Requested, e.Err)
}

func (e *CopyFaultError) Unwrap() error {
	return e.Err
}

// Is reports ErrCopyFault for errors.Is matching.
func (e *CopyFaultError) Is(target error) bool {
	return target == ErrCopyFault
}
