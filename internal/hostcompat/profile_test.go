package hostcompat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentProfile_ResolvesEveryCapability(t *testing.T) {
	p := CurrentProfile()
	require.NotNil(t, p)
	assert.NoError(t, p.Validate(), "every capability must resolve to exactly one implementation")
}

func TestCurrentProfile_StableAcrossCalls(t *testing.T) {
	assert.Same(t, CurrentProfile(), CurrentProfile(), "profile must be resolved once and reused")
}

func TestProfile_Strategies(t *testing.T) {
	strategies := CurrentProfile().Strategies()

	for _, op := range []string{"copy_from_caller", "open_file", "close_descriptor", "raise_fatal_signal"} {
		assert.NotEmpty(t, strategies[op], "operation %q must name its selected implementation", op)
	}
}

func TestProfileValidate_ReportsMissing(t *testing.T) {
	var empty Profile
	err := empty.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileUnresolved)
	assert.Contains(t, err.Error(), "close_descriptor")
}

func TestSafeCopyFromCaller_BufferTooSmall(t *testing.T) {
	dst := make([]byte, 4)
	n, err := SafeCopyFromCaller(dst, 0, 0x1000, 8)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestSafeCopyFromCaller_ZeroCount(t *testing.T) {
	n, err := SafeCopyFromCaller(nil, 0, 0x1000, 0)
	assert.Zero(t, n)
	assert.NoError(t, err)
}
