package hooks

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privgate/privgate/internal/hostapi"
	policytesting "github.com/privgate/privgate/internal/policy/testing"
)

func newTestRegistry(t *testing.T) (*Registry, *policytesting.MockEngine) {
	t.Helper()
	engine := &policytesting.MockEngine{}
	r, err := New(engine, slog.Default())
	require.NoError(t, err)
	return r, engine
}

func TestNew_NilEngine(t *testing.T) {
	r, err := New(nil, slog.Default())
	assert.ErrorIs(t, err, ErrNilEngine)
	assert.Nil(t, r)
}

func TestInstall_ExactlyOnce(t *testing.T) {
	r, _ := newTestRegistry(t)
	table := hostapi.NewTable()

	require.NoError(t, r.Install(table))

	err := r.Install(table)
	assert.ErrorIs(t, err, ErrAlreadyInstalled, "a second install must be rejected, never silently double-register")
}

func TestInstall_NilDispatcher(t *testing.T) {
	r, _ := newTestRegistry(t)
	assert.ErrorIs(t, r.Install(nil), ErrNilDispatcher)
}

func TestInstall_EmptyTableIsSilentNoOp(t *testing.T) {
	r, _ := newTestRegistry(t)
	for i := range r.checkpoints {
		r.checkpoints[i].Enabled = false
	}

	table := hostapi.NewTable()
	require.NoError(t, r.Install(table), "a zero-length registration is a legitimate build configuration")

	// Nothing was handed to the dispatcher, so the layer name stays free.
	err := table.AddHooks([]hostapi.HookEntry{{
		Checkpoint: hostapi.CheckpointCredFixSetuid,
		CredFix:    func(_, _ *hostapi.Credentials, _ int) int { return hostapi.Continue },
	}}, LayerName)
	assert.NoError(t, err)
}

func TestInstall_RegistersEnabledCheckpoints(t *testing.T) {
	r, engine := newTestRegistry(t)
	table := hostapi.NewTable()
	require.NoError(t, r.Install(table))

	oldCred := &hostapi.Credentials{UID: 2000, EUID: 2000}
	newCred := &hostapi.Credentials{UID: 0, EUID: 0}
	rc := table.FixCredentials(oldCred, newCred, hostapi.SetIDRES)

	assert.Equal(t, hostapi.Continue, rc)
	require.Len(t, engine.CredCalls(), 1, "the installed callback must reach the engine through the dispatcher")
}

func TestInstall_LayerNameConflict(t *testing.T) {
	r, _ := newTestRegistry(t)
	table := hostapi.NewTable()

	// Another layer already claimed the privgate name.
	require.NoError(t, table.AddHooks(nil, LayerName))

	err := r.Install(table)
	require.Error(t, err)
	assert.ErrorIs(t, err, hostapi.ErrLayerActive)
}

func TestCheckpoints_DescriptorsAreCopies(t *testing.T) {
	r, _ := newTestRegistry(t)

	descriptors := r.Checkpoints()
	require.Len(t, descriptors, 2)
	descriptors[0].Enabled = !descriptors[0].Enabled

	assert.NotEqual(t, descriptors[0].Enabled, r.Checkpoints()[0].Enabled,
		"descriptor mutation by callers must not reach the registry")
}
