package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroBytes sets the high bit of every zero byte of v (Hacker's Delight).
// Bits above the lowest zero byte may be spurious; only the lowest set bit
// is exact.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Eight bytes are tested per iteration: the needle is broadcast to a word,
// XORed with the haystack word and matching bytes show up as zero bytes.
func Memchr(haystack []byte, needle byte) int {
	m := uint64(needle) * lo8
	i := 0
	for ; len(haystack)-i >= 8; i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(w ^ m); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of needle1 or needle2 in
// haystack, or -1.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	m1, m2 := uint64(needle1)*lo8, uint64(needle2)*lo8
	i := 0
	for ; len(haystack)-i >= 8; i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(w^m1) | zeroBytes(w^m2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of any of three needles in
// haystack, or -1.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	m1, m2, m3 := uint64(needle1)*lo8, uint64(needle2)*lo8, uint64(needle3)*lo8
	i := 0
	for ; len(haystack)-i >= 8; i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(w^m1) | zeroBytes(w^m2) | zeroBytes(w^m3); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
			return i
		}
	}
	return -1
}
