//go:build !linux

package hostcompat

import (
	"fmt"
	"os"
	"syscall"
)

// resolveProfile binds the portable fallbacks. Hosts without the Linux
// primitive set still get the full normalized interface; only cross-process
// memory access is genuinely absent and fails closed.
func resolveProfile() *Profile {
	return &Profile{
		CopyStrategy:   "unsupported",
		OpenStrategy:   "open",
		CloseStrategy:  "close",
		SignalStrategy: "process_signal",

		copyFromProcess: copyUnsupported,
		openFile:        openViaOS,
		readFile:        readViaReadAt,
		writeFile:       writeViaWriteAt,
		closeFD:         closeViaOSFile,
		raiseFatal:      raiseViaProcessSignal,
	}
}

func copyUnsupported(pid int, addr uintptr, _ []byte) (int, error) {
	return 0, fmt.Errorf("%w: cross-process memory read (pid %d addr %#x)", ErrUnsupportedHost, pid, addr)
}

func raiseViaProcessSignal(sig syscall.Signal) error {
	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		return err
	}
	return proc.Signal(sig)
}
