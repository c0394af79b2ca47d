// Package conv provides checked integer conversions for table construction.
//
// Table layouts store offsets, lengths and ids in single bytes. These helpers
// panic on overflow since an out-of-range value means a builder skipped its
// own validation.
package conv

import "math"

// IntToUint8 safely converts an int to uint8.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of uint8 range")
	}
	return uint8(n)
}

// BitAt returns a uint32 with only bit n set.
// Panics if n is not a valid bit index.
//
//go:inline
func BitAt(n int) uint32 {
	if n < 0 || n > 31 {
		panic("integer overflow: bit index out of uint32 range")
	}
	return 1 << uint(n)
}
