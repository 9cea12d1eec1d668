// Package hooks installs the privgate checkpoint callbacks into the host's
// security dispatch table and translates checkpoint invocations into policy
// engine calls.
//
// Both checkpoints are observational: they forward normalized values to the
// engine and always tell the host to continue. No error or panic originating
// in a callback ever reaches the host dispatcher.
package hooks

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/privgate/privgate/internal/hostapi"
	"github.com/privgate/privgate/internal/policy"
)

// LayerName is the name the registry installs under in the host's dispatch
// table.
const LayerName = "privgate"

// Registry owns the (checkpoint, callback) registration table for the
// lifetime of the layer. It is built once, installed exactly once, and never
// torn down individually.
type Registry struct {
	engine      policy.Engine
	logger      *slog.Logger
	checkpoints []CheckpointDescriptor

	installed atomic.Bool

	// initScriptWatch is the boot latch for the file-permission checkpoint:
	// set at most once during early boot, then read from arbitrary
	// concurrent contexts with no further synchronization.
	initScriptWatch atomic.Bool

	metrics Metrics
}

// New creates a registry bound to the given engine. A nil logger falls back
// to slog.Default.
func New(engine policy.Engine, logger *slog.Logger) (*Registry, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		engine:      engine,
		logger:      logger,
		checkpoints: defaultCheckpoints(),
	}, nil
}

// Checkpoints returns the build's checkpoint descriptors.
func (r *Registry) Checkpoints() []CheckpointDescriptor {
	out := make([]CheckpointDescriptor, len(r.checkpoints))
	copy(out, r.checkpoints)
	return out
}

// Install assembles the registration table from the enabled checkpoints and
// hands it to the dispatcher. It succeeds at most once per registry; a
// second call returns ErrAlreadyInstalled. An empty table (every checkpoint
// compiled out) is a legitimate build configuration and registers nothing.
func (r *Registry) Install(d hostapi.Dispatcher) error {
	if d == nil {
		return ErrNilDispatcher
	}
	if !r.installed.CompareAndSwap(false, true) {
		return ErrAlreadyInstalled
	}

	entries := r.buildEntries()
	if len(entries) == 0 {
		r.logger.Debug("no checkpoints enabled, skipping hook registration")
		return nil
	}

	if err := d.AddHooks(entries, LayerName); err != nil {
		return fmt.Errorf("hook registration failed: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Checkpoint)
	}
	r.logger.Info("security hooks installed", "layer", LayerName, "checkpoints", names)
	return nil
}

func (r *Registry) buildEntries() []hostapi.HookEntry {
	var entries []hostapi.HookEntry
	for _, cp := range r.checkpoints {
		if !cp.Enabled {
			continue
		}
		switch cp.Name {
		case hostapi.CheckpointCredFixSetuid:
			entries = append(entries, hostapi.HookEntry{
				Checkpoint: cp.Name,
				CredFix:    r.credFixSetuid,
			})
		case hostapi.CheckpointFilePermission:
			entries = append(entries, hostapi.HookEntry{
				Checkpoint:     cp.Name,
				FilePermission: r.filePermission,
			})
		}
	}
	return entries
}

// EnableInitScriptWatch sets the boot latch. One-way and idempotent; safe
// from any goroutine.
func (r *Registry) EnableInitScriptWatch() {
	if r.initScriptWatch.CompareAndSwap(false, true) {
		r.logger.Info("init script watch enabled")
	}
}

// InitScriptWatchEnabled reports the latch state.
func (r *Registry) InitScriptWatchEnabled() bool {
	return r.initScriptWatch.Load()
}

// Metrics returns a snapshot of checkpoint activity counters.
func (r *Registry) Metrics() MetricsSnapshot {
	return r.metrics.Snapshot()
}

// recoverCheckpoint absorbs a callback panic and records it. The deferred
// caller resets its return value to Continue, so the host never observes the
// failure.
func (r *Registry) recoverCheckpoint(checkpoint string) {
	if p := recover(); p != nil {
		r.metrics.recoveredPanics.Add(1)
		r.logger.Error("checkpoint callback panicked, continuing",
			"checkpoint", checkpoint, "panic", p)
	}
}
