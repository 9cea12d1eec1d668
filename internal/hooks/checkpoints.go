package hooks

import "github.com/privgate/privgate/internal/hostapi"

// CheckpointDescriptor describes one interception point and whether this
// build carries it. Descriptors are fixed at build time; the registry reads
// them once while assembling its registration table.
type CheckpointDescriptor struct {
	Name    string
	Enabled bool
}

// defaultCheckpoints returns the descriptor set for this build. The Enabled
// values come from the privgate_no_* build tags.
func defaultCheckpoints() []CheckpointDescriptor {
	return []CheckpointDescriptor{
		{Name: hostapi.CheckpointCredFixSetuid, Enabled: credFixSetuidEnabled},
		{Name: hostapi.CheckpointFilePermission, Enabled: filePermissionEnabled},
	}
}
