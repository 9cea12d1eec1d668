package hostapi

// Access mask bits for the file-permission checkpoint. The values match the
// host's permission mask encoding.
const (
	MayExec  = 0x1
	MayWrite = 0x2
	MayRead  = 0x4
	MayOpen  = 0x20
)

// File is the narrow view of a host file object handed to the
// file-permission checkpoint. Like Credentials, it is valid only for the
// duration of a single invocation.
type File struct {
	// Path is the host-resolved path of the file.
	Path string

	// Dev and Ino identify the underlying inode.
	Dev uint64
	Ino uint64

	// Flags holds the open flags the file was opened with.
	Flags int
}
