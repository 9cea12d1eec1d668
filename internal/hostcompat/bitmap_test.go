package hostcompat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapZallocCompat_AllBitsZero(t *testing.T) {
	for _, nbits := range []int{0, 1, 63, 64, 65, 4096} {
		bm, err := BitmapZallocCompat(nbits)
		require.NoError(t, err, "BitmapZallocCompat(%d) should not fail", nbits)
		require.Len(t, bm, wordsFor(nbits))

		for bit := 0; bit < nbits; bit++ {
			set, err := BitmapTestCompat(bm, bit)
			require.NoError(t, err)
			assert.False(t, set, "bit %d of a fresh %d-bit bitmap should be zero", bit, nbits)
		}
	}
}

func TestBitmapAllocCompat_NegativeCount(t *testing.T) {
	bm, err := BitmapAllocCompat(-1)
	assert.ErrorIs(t, err, ErrInvalidBitCount)
	assert.Nil(t, bm)
}

func TestBitmapSetAndTest(t *testing.T) {
	bm, err := BitmapZallocCompat(130)
	require.NoError(t, err)

	for _, bit := range []int{0, 63, 64, 129} {
		require.NoError(t, BitmapSetCompat(bm, bit))
		set, err := BitmapTestCompat(bm, bit)
		require.NoError(t, err)
		assert.True(t, set, "bit %d should be set", bit)
	}

	// Neighbors of set bits stay clear.
	for _, bit := range []int{1, 62, 65, 128} {
		set, err := BitmapTestCompat(bm, bit)
		require.NoError(t, err)
		assert.False(t, set, "bit %d should remain clear", bit)
	}
}

func TestBitmapSetCompat_OutOfRange(t *testing.T) {
	bm, err := BitmapZallocCompat(64)
	require.NoError(t, err)

	assert.ErrorIs(t, BitmapSetCompat(bm, 64), ErrBitOutOfRange)
	assert.ErrorIs(t, BitmapSetCompat(bm, -1), ErrBitOutOfRange)

	_, err = BitmapTestCompat(bm, 64)
	assert.ErrorIs(t, err, ErrBitOutOfRange)
}

func TestBitmapFreeCompat_Scrubs(t *testing.T) {
	bm, err := BitmapZallocCompat(128)
	require.NoError(t, err)
	require.NoError(t, BitmapSetCompat(bm, 5))
	require.NoError(t, BitmapSetCompat(bm, 127))

	BitmapFreeCompat(bm)

	for _, word := range bm {
		assert.Zero(t, word, "freed bitmap words should be scrubbed")
	}
}
