package hooks

import "sync/atomic"

// Metrics counts checkpoint activity. All fields are atomics because the
// callbacks run concurrently in arbitrary host contexts.
type Metrics struct {
	credFixInvocations  atomic.Int64
	filePermInvocations atomic.Int64
	engineCredCalls     atomic.Int64
	engineObserveCalls  atomic.Int64
	recoveredPanics     atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	CredFixInvocations  int64 `json:"cred_fix_invocations"`
	FilePermInvocations int64 `json:"file_perm_invocations"`
	EngineCredCalls     int64 `json:"engine_cred_calls"`
	EngineObserveCalls  int64 `json:"engine_observe_calls"`
	RecoveredPanics     int64 `json:"recovered_panics"`
}

// Snapshot returns a consistent-enough copy for reporting; individual
// counters are exact, cross-counter skew is possible under load.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		CredFixInvocations:  m.credFixInvocations.Load(),
		FilePermInvocations: m.filePermInvocations.Load(),
		EngineCredCalls:     m.engineCredCalls.Load(),
		EngineObserveCalls:  m.engineObserveCalls.Load(),
		RecoveredPanics:     m.recoveredPanics.Load(),
	}
}
