// Package hostapi defines the boundary between the privgate layer and the
// host security pipeline: the credential and file shapes handed to checkpoint
// callbacks, the checkpoint names and return convention, and the dispatcher
// the host exposes for hook installation.
//
// Nothing in this package makes policy decisions. It exists so that the hook
// layer and the host agree on exactly one narrow set of per-invocation
// arguments and nothing else crosses the boundary.
package hostapi

// KUID is a host-encoded user ID. Hosts may encode identity values relative
// to a user namespace; callbacks must never interpret the raw encoding and
// instead unwrap it through Value.
type KUID uint32

// Value returns the normalized numeric user ID.
func (id KUID) Value() uint32 {
	return uint32(id)
}

// KGID is a host-encoded group ID. See KUID.
type KGID uint32

// Value returns the normalized numeric group ID.
func (id KGID) Value() uint32 {
	return uint32(id)
}

// Credentials is the host's credential structure as seen by checkpoint
// callbacks. Instances handed to a callback are owned by the host for the
// duration of that invocation only and must not be retained.
type Credentials struct {
	UID    KUID
	GID    KGID
	EUID   KUID
	EGID   KGID
	SUID   KUID
	Groups []KGID
}

// Credential-transition kinds passed to the credential-fix checkpoint.
// The values match the host's setid flag encoding.
const (
	SetIDID  = 1 // set*id() affecting a single ID
	SetIDRE  = 2 // setreuid()/setregid() style transitions
	SetIDRES = 4 // setresuid()/setresgid() style transitions
	SetIDFS  = 8 // setfsuid()/setfsgid() style transitions
)
