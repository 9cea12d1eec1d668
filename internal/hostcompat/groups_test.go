package hostcompat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortGroupListCompat(t *testing.T) {
	gids := []uint32{3003, 0, 1000, 2000, 1000}
	SortGroupListCompat(gids)
	assert.Equal(t, []uint32{0, 1000, 1000, 2000, 3003}, gids)

	// Idempotent on an already sorted list.
	SortGroupListCompat(gids)
	assert.Equal(t, []uint32{0, 1000, 1000, 2000, 3003}, gids)
}

func TestSortGroupListCompat_EmptyAndSingle(t *testing.T) {
	var empty []uint32
	SortGroupListCompat(empty)
	assert.Empty(t, empty)

	single := []uint32{42}
	SortGroupListCompat(single)
	assert.Equal(t, []uint32{42}, single)
}
