package hostcompat

import "slices"

// SortGroupListCompat sorts a supplementary group list in ascending order.
// Hosts that keep group lists pre-sorted make this a no-op; the operation is
// idempotent either way.
func SortGroupListCompat(gids []uint32) {
	slices.Sort(gids)
}
