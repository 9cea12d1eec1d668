package hostcompat

import "fmt"

const bitsPerWord = 64

// wordsFor returns the number of 64-bit words needed to hold nbits.
func wordsFor(nbits int) int {
	return (nbits + bitsPerWord - 1) / bitsPerWord
}

// BitmapAllocCompat allocates a bitmap sized to hold nbits bits. The Go
// runtime zeroes allocations, so the result is all-zero like
// BitmapZallocCompat; both names are kept so call sites state intent.
func BitmapAllocCompat(nbits int) ([]uint64, error) {
	if nbits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBitCount, nbits)
	}
	return make([]uint64, wordsFor(nbits)), nil
}

// BitmapZallocCompat allocates a zero-filled bitmap sized to hold nbits bits.
func BitmapZallocCompat(nbits int) ([]uint64, error) {
	return BitmapAllocCompat(nbits)
}

// BitmapFreeCompat scrubs a bitmap before it is released to the runtime.
func BitmapFreeCompat(bm []uint64) {
	for i := range bm {
		bm[i] = 0
	}
}

// BitmapSetCompat sets one bit.
func BitmapSetCompat(bm []uint64, bit int) error {
	if bit < 0 || bit >= len(bm)*bitsPerWord {
		return fmt.Errorf("%w: bit %d, capacity %d", ErrBitOutOfRange, bit, len(bm)*bitsPerWord)
	}
	bm[bit/bitsPerWord] |= 1 << (uint(bit) % bitsPerWord)
	return nil
}

// BitmapTestCompat reports whether one bit is set.
func BitmapTestCompat(bm []uint64, bit int) (bool, error) {
	if bit < 0 || bit >= len(bm)*bitsPerWord {
		return false, fmt.Errorf("%w: bit %d, capacity %d", ErrBitOutOfRange, bit, len(bm)*bitsPerWord)
	}
	return bm[bit/bitsPerWord]&(1<<(uint(bit)%bitsPerWord)) != 0, nil
}
