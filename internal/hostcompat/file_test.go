//go:build !windows

package hostcompat

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenReadWriteCompat_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")

	f, err := OpenFileCompat(path, os.O_CREATE|os.O_RDWR, 0o600)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Name())

	content := []byte("on property:sys.boot_completed=1")
	n, err := WriteFileCompat(f, content, 0)
	require.NoError(t, err)
	require.Equal(t, len(content), n)

	// Positional read from the middle of the file.
	buf := make([]byte, 8)
	n, err = ReadFileCompat(f, buf, 3)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	assert.Equal(t, content[3:11], buf)
}

func TestReadFileCompat_PastEndOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")

	f, err := OpenFileCompat(path, os.O_CREATE|os.O_RDWR, 0o600)
	require.NoError(t, err)
	defer f.Close()

	_, err = WriteFileCompat(f, []byte("abc"), 0)
	require.NoError(t, err)

	buf := make([]byte, 16)
	n, err := ReadFileCompat(f, buf, 100)
	assert.NoError(t, err, "a read past end of file reports a zero-length read, not an error")
	assert.Zero(t, n)
}

func TestOpenFileCompat_MissingFile(t *testing.T) {
	_, err := OpenFileCompat(filepath.Join(t.TempDir(), "absent"), os.O_RDONLY, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCloseDescriptorCompat_DoubleClose(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "fd")
	require.NoError(t, err)

	// Work on a duplicate so the *os.File finalizer does not interfere.
	fd, err := syscall.Dup(int(f.Fd()))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, CloseDescriptorCompat(fd), "first close must release the descriptor")

	err = CloseDescriptorCompat(fd)
	require.Error(t, err, "second close must be reported, never undefined behavior")
	assert.ErrorIs(t, err, syscall.EBADF)
}

func TestCloseDescriptorCompat_NegativeDescriptor(t *testing.T) {
	err := CloseDescriptorCompat(-1)
	assert.ErrorIs(t, err, syscall.EBADF)
}
