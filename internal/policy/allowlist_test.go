package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privgate/privgate/internal/hostapi"
)

func newTestEngine(t *testing.T) *AllowlistEngine {
	t.Helper()
	cfg := &Config{
		AllowUIDs:   []uint32{2000},
		InitScripts: []string{"/init.rc", "/system/etc/init/atrace.rc"},
		Unmount: []UnmountEntry{
			{Path: "/data/adb/modules", Flags: 2},
		},
	}
	engine, err := NewAllowlistEngine(cfg, nil)
	require.NoError(t, err)
	return engine
}

func TestNewAllowlistEngine_NilConfig(t *testing.T) {
	engine, err := NewAllowlistEngine(nil, nil)
	assert.ErrorIs(t, err, ErrNilConfig)
	assert.Nil(t, engine)
}

func TestDecideCredentialTransition(t *testing.T) {
	tests := []struct {
		name    string
		oldUID  uint32
		newUID  uint32
		newEUID uint32
		want    Decision
	}{
		{"unprivileged transition", 1000, 1001, 1001, DecisionAllow},
		{"allowlisted to root", 2000, 0, 0, DecisionAllow},
		{"unlisted to root", 1000, 0, 0, DecisionDeny},
		{"unlisted to effective root", 1000, 1000, 0, DecisionDeny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t)
			got := engine.DecideCredentialTransition(tt.oldUID, tt.newUID, tt.newEUID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObserveInitCandidate_LatchesFirstMatch(t *testing.T) {
	engine := newTestEngine(t)

	engine.ObserveInitCandidate(&hostapi.File{Path: "/vendor/lib/libc.so"})
	engine.ObserveInitCandidate(&hostapi.File{Path: "/init.rc"})
	engine.ObserveInitCandidate(&hostapi.File{Path: "/system/etc/init/atrace.rc"})
	engine.ObserveInitCandidate(nil)

	stats := engine.Stats()
	assert.Equal(t, int64(3), stats.Observed, "nil files are ignored, everything else is counted")
	assert.Equal(t, "/init.rc", stats.FirstInitScript, "only the first matching script is latched")
}

func TestStats_CountsDecisions(t *testing.T) {
	engine := newTestEngine(t)

	engine.DecideCredentialTransition(1000, 1001, 1001)
	engine.DecideCredentialTransition(2000, 0, 0)
	engine.DecideCredentialTransition(1000, 0, 0)

	stats := engine.Stats()
	assert.Equal(t, int64(2), stats.Granted)
	assert.Equal(t, int64(1), stats.Denied)
}

func TestUnmountPaths_ReturnsCopy(t *testing.T) {
	engine := newTestEngine(t)

	paths := engine.UnmountPaths()
	require.Len(t, paths, 1)
	paths[0].Path = "/mutated"

	assert.Equal(t, "/data/adb/modules", engine.UnmountPaths()[0].Path)
}
