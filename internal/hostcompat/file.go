package hostcompat

import (
	"io"
	"os"
	"syscall"
)

// HostFile is the handle returned by OpenFileCompat. It wraps the underlying
// host file object; reads and writes go through ReadFileCompat and
// WriteFileCompat so that the selected primitive stays uniform.
type HostFile struct {
	file *os.File
	path string
}

// Name returns the path the file was opened with.
func (f *HostFile) Name() string {
	return f.path
}

// Fd returns the underlying descriptor.
func (f *HostFile) Fd() int {
	return int(f.file.Fd())
}

// Stat returns file metadata from the host.
func (f *HostFile) Stat() (os.FileInfo, error) {
	return f.file.Stat()
}

// Close releases the handle.
func (f *HostFile) Close() error {
	return f.file.Close()
}

// Portable fallback implementations shared by all platforms. These carry the
// same semantics and errno domain as the native-selected primitives.

func openViaOS(path string, flags int, mode os.FileMode) (*HostFile, error) {
	file, err := os.OpenFile(path, flags, mode) // #nosec G304 -- callers pass host-resolved paths
	if err != nil {
		return nil, err
	}
	return &HostFile{file: file, path: path}, nil
}

func readViaReadAt(f *HostFile, buf []byte, pos int64) (int, error) {
	n, err := f.file.ReadAt(buf, pos)
	// The normalized contract reports end of file as a short or zero read,
	// not as an error, matching positional-read host primitives.
	if err == io.EOF {
		err = nil
	}
	return n, err
}

func writeViaWriteAt(f *HostFile, buf []byte, pos int64) (int, error) {
	return f.file.WriteAt(buf, pos)
}

func closeViaOSFile(fd int) error {
	if fd < 0 {
		return syscall.EBADF
	}
	return os.NewFile(uintptr(fd), "").Close()
}
