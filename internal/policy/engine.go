// Package policy provides the decision engine consulted by the hook layer.
// The engine answers credential-transition questions and records early-boot
// file observations; it never controls the host's checkpoint outcome. The
// hook layer treats its answers as bookkeeping.
package policy

import "github.com/privgate/privgate/internal/hostapi"

// Decision is the engine's answer to a credential-transition question.
type Decision int

// Decision values.
const (
	DecisionDeny Decision = iota
	DecisionAllow
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// Engine is the policy interface the hook layer calls. Implementations must
// complete in bounded time: both methods run inline on the host's
// security-check path.
type Engine interface {
	// DecideCredentialTransition is consulted after the host validates a
	// change from oldUID to newUID with effective UID newEUID. The answer is
	// recorded by the engine for its own state; the caller does not gate on
	// it.
	DecideCredentialTransition(oldUID, newUID, newEUID uint32) Decision

	// ObserveInitCandidate records a file the host is about to permit access
	// to during early boot. Pure observation; no answer is consulted.
	ObserveInitCandidate(file *hostapi.File)
}
