package policy

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/privgate/privgate/internal/hostapi"
)

// AllowlistEngine is the reference Engine: a UID allowlist decides credential
// transitions, and init-candidate observations are matched against a fixed
// set of init-script paths. All state past construction is read-only or
// atomic, so both methods are safe from arbitrary concurrent contexts.
type AllowlistEngine struct {
	logger      *slog.Logger
	allowUIDs   map[uint32]struct{}
	initScripts map[string]struct{}
	unmount     []UnmountEntry

	granted  atomic.Int64
	denied   atomic.Int64
	observed atomic.Int64

	initScriptOnce sync.Once
	initScriptSeen atomic.Value // string
}

// Stats is a point-in-time snapshot of engine bookkeeping.
type Stats struct {
	Granted         int64  `json:"granted"`
	Denied          int64  `json:"denied"`
	Observed        int64  `json:"observed"`
	FirstInitScript string `json:"first_init_script,omitempty"`
}

// NewAllowlistEngine builds an engine from a validated configuration.
func NewAllowlistEngine(cfg *Config, logger *slog.Logger) (*AllowlistEngine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := &AllowlistEngine{
		logger:      logger,
		allowUIDs:   make(map[uint32]struct{}, len(cfg.AllowUIDs)),
		initScripts: make(map[string]struct{}, len(cfg.InitScripts)),
		unmount:     make([]UnmountEntry, len(cfg.Unmount)),
	}
	for _, uid := range cfg.AllowUIDs {
		e.allowUIDs[uid] = struct{}{}
	}
	for _, path := range cfg.InitScripts {
		e.initScripts[path] = struct{}{}
	}
	copy(e.unmount, cfg.Unmount)

	logger.Info("policy engine configured",
		"allowed_uids", len(e.allowUIDs),
		"init_scripts", len(e.initScripts),
		"unmount_entries", len(e.unmount))
	return e, nil
}

// DecideCredentialTransition implements Engine. A transition is allowed when
// it does not reach uid 0, or when the requesting real UID is allowlisted.
func (e *AllowlistEngine) DecideCredentialTransition(oldUID, newUID, newEUID uint32) Decision {
	if newUID != 0 && newEUID != 0 {
		e.granted.Add(1)
		return DecisionAllow
	}
	if _, ok := e.allowUIDs[oldUID]; ok {
		e.granted.Add(1)
		e.logger.Info("privileged transition granted",
			"old_uid", oldUID, "new_uid", newUID, "new_euid", newEUID)
		return DecisionAllow
	}

	e.denied.Add(1)
	e.logger.Warn("privileged transition not allowlisted",
		"old_uid", oldUID, "new_uid", newUID, "new_euid", newEUID)
	return DecisionDeny
}

// ObserveInitCandidate implements Engine. The first observed file matching a
// configured init-script path is latched.
func (e *AllowlistEngine) ObserveInitCandidate(file *hostapi.File) {
	if file == nil {
		return
	}
	e.observed.Add(1)

	if _, ok := e.initScripts[file.Path]; !ok {
		return
	}
	e.initScriptOnce.Do(func() {
		e.initScriptSeen.Store(file.Path)
		e.logger.Info("init script observed", "path", file.Path, "dev", file.Dev, "ino", file.Ino)
	})
}

// UnmountPaths returns a copy of the configured unmount entries.
func (e *AllowlistEngine) UnmountPaths() []UnmountEntry {
	out := make([]UnmountEntry, len(e.unmount))
	copy(out, e.unmount)
	return out
}

// Stats returns current bookkeeping counters.
func (e *AllowlistEngine) Stats() Stats {
	s := Stats{
		Granted:  e.granted.Load(),
		Denied:   e.denied.Load(),
		Observed: e.observed.Load(),
	}
	if v := e.initScriptSeen.Load(); v != nil {
		s.FirstInitScript = v.(string)
	}
	return s
}
