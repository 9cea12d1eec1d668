package hooks

import "github.com/privgate/privgate/internal/hostapi"

// filePermission is the file-permission checkpoint callback. Until the boot
// latch is set, the steady-state cost is the single latch read. Once set,
// the file is handed to the engine's init-candidate observation and the
// callback still returns Continue unconditionally: its role is to give the
// engine an observation point early in boot, not to deny file access.
//
// A recovered panic leaves the zero return value, which is Continue.
func (r *Registry) filePermission(file *hostapi.File, _ int) int {
	if !r.initScriptWatch.Load() {
		return hostapi.Continue
	}

	defer r.recoverCheckpoint(hostapi.CheckpointFilePermission)

	r.metrics.filePermInvocations.Add(1)
	if file == nil {
		return hostapi.Continue
	}

	r.metrics.engineObserveCalls.Add(1)
	r.engine.ObserveInitCandidate(file)

	return hostapi.Continue
}
