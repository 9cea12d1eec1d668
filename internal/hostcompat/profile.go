// Package hostcompat normalizes version-dependent host primitives into one
// stable interface. Each operation resolves to exactly one concrete
// implementation: operating-system variance is settled at compile time
// through build-tag file pairs, and within an operating system the available
// primitive set is probed exactly once and bound into an immutable Profile.
// Call sites dispatch through the bound implementation and never branch on
// host capabilities themselves.
//
// Selection governs implementation only, never interface: every operation
// keeps one signature and one error-code domain across all branches.
package hostcompat

import (
	"fmt"
	"os"
	"sync"
	"syscall"
)

// Profile describes the resolved host capability set. It is constructed once
// per process and never mutated afterwards.
type Profile struct {
	// Capability flags, fixed at resolution time.
	HasProcessVMReadv  bool
	HasOpenat2         bool
	HasCloseRange      bool
	HasPidfdSendSignal bool

	// Names of the selected implementations, for diagnostics.
	CopyStrategy   string
	OpenStrategy   string
	CloseStrategy  string
	SignalStrategy string

	// Bound implementations. Exactly one per capability.
	copyFromProcess func(pid int, addr uintptr, dst []byte) (int, error)
	openFile        func(path string, flags int, mode os.FileMode) (*HostFile, error)
	readFile        func(f *HostFile, buf []byte, pos int64) (int, error)
	writeFile       func(f *HostFile, buf []byte, pos int64) (int, error)
	closeFD         func(fd int) error
	raiseFatal      func(sig syscall.Signal) error
}

// resolveProfile is supplied by the platform-specific resolve file.
var currentProfile = sync.OnceValue(resolveProfile)

// CurrentProfile returns the resolved capability profile for this host.
func CurrentProfile() *Profile {
	return currentProfile()
}

// Validate reports whether every capability resolved to an implementation.
// A non-nil error names the unresolved capabilities and indicates a build or
// resolution defect.
func (p *Profile) Validate() error {
	var missing []string
	if p.copyFromProcess == nil {
		missing = append(missing, "copy_from_caller")
	}
	if p.openFile == nil {
		missing = append(missing, "open_file")
	}
	if p.readFile == nil {
		missing = append(missing, "read_file")
	}
	if p.writeFile == nil {
		missing = append(missing, "write_file")
	}
	if p.closeFD == nil {
		missing = append(missing, "close_descriptor")
	}
	if p.raiseFatal == nil {
		missing = append(missing, "raise_fatal_signal")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrProfileUnresolved, missing)
	}
	return nil
}

// Strategies returns the selected implementation name per normalized
// operation, keyed by operation name.
func (p *Profile) Strategies() map[string]string {
	return map[string]string{
		"copy_from_caller":   p.CopyStrategy,
		"open_file":          p.OpenStrategy,
		"close_descriptor":   p.CloseStrategy,
		"raise_fatal_signal": p.SignalStrategy,
	}
}

// SafeCopyFromCaller copies n bytes from the address space of pid (0 means
// the current process) into dst without faulting the caller. It returns the
// number of bytes copied. On validation failure it returns a *CopyFaultError
// and dst holds nothing beyond the reported count.
func SafeCopyFromCaller(dst []byte, pid int, addr uintptr, n int) (int, error) {
	if n < 0 || n > len(dst) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, n, len(dst))
	}
	if n == 0 {
		return 0, nil
	}
	if pid == 0 {
		pid = os.Getpid()
	}
	copied, err := currentProfile().copyFromProcess(pid, addr, dst[:n])
	if copied < 0 {
		// Raw syscall wrappers report -1 on failure; the contract reports
		// bytes actually written to dst.
		copied = 0
	}
	if err != nil {
		return copied, &CopyFaultError{Pid: pid, Addr: addr, Requested: n, Copied: copied, Err: err}
	}
	if copied < n {
		return copied, &CopyFaultError{Pid: pid, Addr: addr, Requested: n, Copied: copied, Err: ErrCopyFault}
	}
	return copied, nil
}

// AccessCheck validates that n bytes starting at addr are legally readable
// in the address space of pid (0 means the current process). Only read
// validation is provided; that is the only mode the hook layer needs.
func AccessCheck(pid int, addr uintptr, n int) error {
	if n <= 0 {
		return nil
	}
	if pid == 0 {
		pid = os.Getpid()
	}
	pageSize := uintptr(os.Getpagesize())
	var probe [1]byte
	end := addr + uintptr(n)
	// Touch one byte per page in the range. The last byte is probed
	// separately so ranges ending mid-page are fully validated.
	for p := addr; p < end; p += pageSize {
		if _, err := currentProfile().copyFromProcess(pid, p, probe[:]); err != nil {
			return fmt.Errorf("%w: pid %d addr %#x: %v", ErrRangeNotReadable, pid, p, err)
		}
	}
	if _, err := currentProfile().copyFromProcess(pid, end-1, probe[:]); err != nil {
		return fmt.Errorf("%w: pid %d addr %#x: %v", ErrRangeNotReadable, pid, end-1, err)
	}
	return nil
}

// OpenFileCompat opens a host file. The selected primitive differs across
// host generations; semantics and the errno domain do not.
func OpenFileCompat(path string, flags int, mode os.FileMode) (*HostFile, error) {
	return currentProfile().openFile(path, flags, mode)
}

// ReadFileCompat reads from f at the given position without moving the file
// offset. A read at or past end of file returns 0 with a nil error.
func ReadFileCompat(f *HostFile, buf []byte, pos int64) (int, error) {
	return currentProfile().readFile(f, buf, pos)
}

// WriteFileCompat writes to f at the given position without moving the file
// offset.
func WriteFileCompat(f *HostFile, buf []byte, pos int64) (int, error) {
	return currentProfile().writeFile(f, buf, pos)
}

// CloseDescriptorCompat closes a file descriptor of the current process.
// Closing a descriptor that is not open returns the host's invalid-descriptor
// error (EBADF) on every branch.
func CloseDescriptorCompat(fd int) error {
	return currentProfile().closeFD(fd)
}

// RaiseFatalSignalCompat delivers a fatal signal to the current execution
// context.
func RaiseFatalSignalCompat(sig syscall.Signal) error {
	return currentProfile().raiseFatal(sig)
}
