// Package tag matches a fixed byte string at the start of a buffer with
// streaming semantics.
//
// A tag either matches completely (Done, consuming len(tag) bytes), differs
// at some byte that is already available (Error), or agrees with every
// available byte but needs more input to finish (Incomplete, with the exact
// number of missing bytes).
package tag

import (
	"encoding/binary"
	"math/bits"

	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/simd"
)

// Match compares tag with the start of input eight bytes at a time.
//
// An empty tag matches any input and consumes nothing.
func Match(tag, input []byte) result.Outcome[[]byte] {
	n := min(len(tag), len(input))
	return outcome(tag, input, mismatch(tag[:n], input[:n]))
}

// MatchKernel compares tag with the start of input sixteen bytes at a time
// through k (PCMPESTRI equal-each on amd64) and finishes the remainder with
// Match's scalar loop.
func MatchKernel(k simd.Kernel, tag, input []byte) result.Outcome[[]byte] {
	n := min(len(tag), len(input))
	covered := n &^ (simd.LaneBytes - 1)
	i := k.Mismatch(tag[:n], input[:n])
	if i >= covered {
		i = covered + mismatch(tag[covered:n], input[covered:n])
	}
	return outcome(tag, input, i)
}

// MatchReference is the byte-by-byte form of Match.
func MatchReference(tag, input []byte) result.Outcome[[]byte] {
	n := min(len(tag), len(input))
	i := 0
	for i < n && tag[i] == input[i] {
		i++
	}
	return outcome(tag, input, i)
}

// outcome maps the length of the common prefix to the streaming result.
func outcome(tag, input []byte, common int) result.Outcome[[]byte] {
	switch {
	case common < min(len(tag), len(input)):
		return result.Fail[[]byte](result.NoMatch)
	case len(input) < len(tag):
		return result.Need[[]byte](len(tag) - len(input))
	default:
		return result.Ok(input[len(tag):], input[:len(tag)])
	}
}

// mismatch returns the index of the first differing byte of two equal-length
// slices, or their length.
//
// Eight bytes are loaded as little-endian words and XORed; the lowest set bit
// of a non-zero XOR lies in the first differing byte.
func mismatch(a, b []byte) int {
	b = b[:len(a)]
	i := 0
	for len(a)-i >= 8 {
		if x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:]); x != 0 {
			return i + bits.TrailingZeros64(x)/8
		}
		i += 8
	}
	for ; i < len(a); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return i
}
