package hooks

import "github.com/privgate/privgate/internal/hostapi"

// CredentialSnapshot holds the normalized identity values extracted for one
// credential-fix invocation. Instances live on the callback stack and are
// never retained past its return.
type CredentialSnapshot struct {
	OldUID  uint32
	NewUID  uint32
	NewEUID uint32
}

// credFixSetuid is the credential-fix checkpoint callback. The host invokes
// it after validating a credential transition; the callback forwards the
// normalized (old uid, new uid, new effective uid) triple to the policy
// engine and always returns Continue. This checkpoint reports transitions,
// it does not block them.
//
// A recovered panic leaves the zero return value, which is Continue.
func (r *Registry) credFixSetuid(oldCred, newCred *hostapi.Credentials, flags int) int {
	defer r.recoverCheckpoint(hostapi.CheckpointCredFixSetuid)

	r.metrics.credFixInvocations.Add(1)
	if oldCred == nil || newCred == nil {
		return hostapi.Continue
	}

	snap := CredentialSnapshot{
		OldUID:  oldCred.UID.Value(),
		NewUID:  newCred.UID.Value(),
		NewEUID: newCred.EUID.Value(),
	}

	r.metrics.engineCredCalls.Add(1)
	decision := r.engine.DecideCredentialTransition(snap.OldUID, snap.NewUID, snap.NewEUID)

	r.logger.Debug("credential transition observed",
		"old_uid", snap.OldUID,
		"new_uid", snap.NewUID,
		"new_euid", snap.NewEUID,
		"kind", flags,
		"decision", decision.String())

	return hostapi.Continue
}
