package hostapi

import (
	"fmt"
	"sync"
)

// HookEntry binds one checkpoint name to one callback. Exactly one of the
// callback fields must be set, and it must match the named checkpoint.
type HookEntry struct {
	Checkpoint     string
	CredFix        CredFixFunc
	FilePermission FilePermissionFunc
}

func (e HookEntry) validate() error {
	switch e.Checkpoint {
	case CheckpointCredFixSetuid:
		if e.CredFix == nil || e.FilePermission != nil {
			return fmt.Errorf("%w: checkpoint %q", ErrInvalidHookEntry, e.Checkpoint)
		}
	case CheckpointFilePermission:
		if e.FilePermission == nil || e.CredFix != nil {
			return fmt.Errorf("%w: checkpoint %q", ErrInvalidHookEntry, e.Checkpoint)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCheckpoint, e.Checkpoint)
	}
	return nil
}

// Dispatcher is the host's hook-installation facility. The host owns
// invocation of the installed callbacks; the caller hands over the entry
// list exactly once per layer and never mutates it afterwards.
type Dispatcher interface {
	// AddHooks installs the given entries under the given layer name.
	// Installation is atomic: either all entries become active together or
	// none do. Installing a layer name twice returns ErrLayerActive.
	AddHooks(entries []HookEntry, layer string) error
}

// Table is an in-process reference dispatcher. A host embedding the privgate
// layer drives its security checkpoints through FixCredentials and
// CheckFilePermission; installed callbacks run synchronously in the calling
// context, in installation order.
type Table struct {
	mu     sync.RWMutex
	layers map[string]struct{}

	credFix  []CredFixFunc
	filePerm []FilePermissionFunc
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{layers: make(map[string]struct{})}
}

// AddHooks implements Dispatcher. All entries are validated before any
// becomes visible, so a rejected install leaves the table unchanged.
func (t *Table) AddHooks(entries []HookEntry, layer string) error {
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, active := t.layers[layer]; active {
		return fmt.Errorf("%w: %q", ErrLayerActive, layer)
	}
	t.layers[layer] = struct{}{}

	for _, e := range entries {
		switch e.Checkpoint {
		case CheckpointCredFixSetuid:
			t.credFix = append(t.credFix, e.CredFix)
		case CheckpointFilePermission:
			t.filePerm = append(t.filePerm, e.FilePermission)
		}
	}
	return nil
}

// FixCredentials runs the credential-fix checkpoint. The first non-zero
// callback return denies the transition.
func (t *Table) FixCredentials(oldCred, newCred *Credentials, flags int) int {
	t.mu.RLock()
	callbacks := t.credFix
	t.mu.RUnlock()

	for _, cb := range callbacks {
		if rc := cb(oldCred, newCred, flags); rc != Continue {
			return rc
		}
	}
	return Continue
}

// CheckFilePermission runs the file-permission checkpoint. The first
// non-zero callback return denies the operation.
func (t *Table) CheckFilePermission(file *File, mask int) int {
	t.mu.RLock()
	callbacks := t.filePerm
	t.mu.RUnlock()

	for _, cb := range callbacks {
		if rc := cb(file, mask); rc != Continue {
			return rc
		}
	}
	return Continue
}
