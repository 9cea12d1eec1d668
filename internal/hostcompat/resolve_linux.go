//go:build linux

package hostcompat

import (
	"fmt"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// resolveProfile probes the live host once and binds one implementation per
// capability. The probes are cheap and side-effect free; a primitive that
// fails its probe is treated as absent and the portable fallback is bound
// instead.
func resolveProfile() *Profile {
	p := &Profile{
		HasProcessVMReadv:  probeProcessVMReadv(),
		HasOpenat2:         probeOpenat2(),
		HasCloseRange:      probeCloseRange(),
		HasPidfdSendSignal: probePidfdSendSignal(),
	}

	if p.HasProcessVMReadv {
		p.copyFromProcess = copyViaProcessVM
		p.CopyStrategy = "process_vm_readv"
	} else {
		p.copyFromProcess = copyViaProcMem
		p.CopyStrategy = "proc_mem"
	}

	if p.HasOpenat2 {
		p.openFile = openViaOpenat2
		p.OpenStrategy = "openat2"
		p.readFile = readViaPread
		p.writeFile = writeViaPwrite
	} else {
		p.openFile = openViaOS
		p.OpenStrategy = "open"
		p.readFile = readViaPread
		p.writeFile = writeViaPwrite
	}

	if p.HasCloseRange {
		p.closeFD = closeViaCloseRange
		p.CloseStrategy = "close_range"
	} else {
		p.closeFD = closeViaClose
		p.CloseStrategy = "close"
	}

	if p.HasPidfdSendSignal {
		p.raiseFatal = raiseViaPidfd
		p.SignalStrategy = "pidfd_send_signal"
	} else {
		p.raiseFatal = raiseViaKill
		p.SignalStrategy = "kill"
	}

	return p
}

// probeProcessVMReadv verifies process_vm_readv by reading one byte of this
// process's own memory through it.
func probeProcessVMReadv() bool {
	src := [1]byte{0x5a}
	var dst [1]byte
	n, err := copyViaProcessVM(os.Getpid(), uintptr(unsafe.Pointer(&src[0])), dst[:])
	ok := err == nil && n == 1 && dst[0] == 0x5a
	runtime.KeepAlive(&src)
	return ok
}

func probeOpenat2() bool {
	fd, err := unix.Openat2(unix.AT_FDCWD, "/", &unix.OpenHow{Flags: uint64(unix.O_RDONLY | unix.O_CLOEXEC)})
	if err != nil {
		return false
	}
	_ = unix.Close(fd)
	return true
}

// probeCloseRange calls close_range with an inverted descriptor range, which
// yields EINVAL when the syscall exists and ENOSYS when it does not. No
// descriptor is touched either way.
func probeCloseRange() bool {
	_, _, errno := unix.Syscall(unix.SYS_CLOSE_RANGE, 1, 0, 0)
	return errno != unix.ENOSYS
}

func probePidfdSendSignal() bool {
	pidfd, err := unix.PidfdOpen(os.Getpid(), 0)
	if err != nil {
		return false
	}
	_ = unix.Close(pidfd)
	return true
}

// copyViaProcessVM reads remote memory through process_vm_readv. The kernel
// validates the remote range and returns EFAULT without touching the local
// buffer beyond the bytes it transferred.
func copyViaProcessVM(pid int, addr uintptr, dst []byte) (int, error) {
	var local unix.Iovec
	local.Base = &dst[0]
	local.SetLen(len(dst))

	remote := []unix.RemoteIovec{{Base: addr, Len: len(dst)}}
	return unix.ProcessVMReadv(pid, []unix.Iovec{local}, remote, 0)
}

// copyViaProcMem is the fallback for hosts without process_vm_readv: a
// positional read of /proc/<pid>/mem, which performs the same access checks
// in the kernel.
func copyViaProcMem(pid int, addr uintptr, dst []byte) (int, error) {
	mem, err := os.Open(fmt.Sprintf("/proc/%d/mem", pid))
	if err != nil {
		return 0, err
	}
	defer mem.Close()

	n, err := mem.ReadAt(dst, int64(addr))
	if err != nil && n == len(dst) {
		err = nil
	}
	return n, err
}

// openViaOpenat2 resolves the open through openat2. No resolve restrictions
// are requested: the selected primitive differs, the open semantics do not.
func openViaOpenat2(path string, flags int, mode os.FileMode) (*HostFile, error) {
	how := &unix.OpenHow{Flags: uint64(flags | unix.O_CLOEXEC)}
	// openat2 rejects a non-zero mode unless the open creates a file.
	if flags&(unix.O_CREAT|unix.O_TMPFILE) != 0 {
		how.Mode = uint64(mode.Perm())
	}
	fd, err := unix.Openat2(unix.AT_FDCWD, path, how)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return &HostFile{file: os.NewFile(uintptr(fd), path), path: path}, nil
}

func readViaPread(f *HostFile, buf []byte, pos int64) (int, error) {
	return unix.Pread(f.Fd(), buf, pos)
}

func writeViaPwrite(f *HostFile, buf []byte, pos int64) (int, error) {
	return unix.Pwrite(f.Fd(), buf, pos)
}

// closeViaCloseRange closes a single descriptor through close_range.
// close_range silently skips descriptors that are not open, so the
// descriptor is probed first to keep EBADF reporting identical to close(2).
func closeViaCloseRange(fd int) error {
	if fd < 0 {
		return unix.EBADF
	}
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0); err != nil {
		return err
	}
	if _, _, errno := unix.Syscall(unix.SYS_CLOSE_RANGE, uintptr(fd), uintptr(fd), 0); errno != 0 {
		return errno
	}
	return nil
}

func closeViaClose(fd int) error {
	if fd < 0 {
		return unix.EBADF
	}
	return unix.Close(fd)
}

func raiseViaPidfd(sig syscall.Signal) error {
	pidfd, err := unix.PidfdOpen(os.Getpid(), 0)
	if err != nil {
		return err
	}
	defer unix.Close(pidfd)
	return unix.PidfdSendSignal(pidfd, unix.Signal(sig), nil, 0)
}

func raiseViaKill(sig syscall.Signal) error {
	return unix.Kill(os.Getpid(), unix.Signal(sig))
}
