package hostapi

// Checkpoint names recognized by the dispatcher. Each HookEntry names
// exactly one of these.
const (
	// CheckpointCredFixSetuid is invoked after the host has validated a
	// credential transition, immediately before the new credentials are
	// committed.
	CheckpointCredFixSetuid = "cred_fix_setuid"

	// CheckpointFilePermission is invoked before the host permits a file
	// operation described by an access mask.
	CheckpointFilePermission = "file_permission"
)

// Continue is the callback return value that lets the host proceed with the
// checked operation. Any non-zero return denies it.
const Continue = 0

// CredFixFunc is the callback shape for CheckpointCredFixSetuid. It receives
// the credential sets before and after the transition and a flags value
// describing the transition kind (SetID* constants).
type CredFixFunc func(oldCred, newCred *Credentials, flags int) int

// FilePermissionFunc is the callback shape for CheckpointFilePermission.
type FilePermissionFunc func(file *File, mask int) int
