// Package scan finds the longest prefix of a buffer whose bytes all belong to
// a byte class.
//
// Two families of scanners exist:
//   - While1 and While test an arbitrary predicate, eight bytes per iteration
//   - Ranges1 and Ranges test membership in a RangeSet sixteen bytes at a time
//     through a simd.Kernel (PCMPESTRI range mode on amd64)
//
// The "1" variants are one-or-more: an empty prefix is Error(NoMatch). The
// plain variants are zero-or-more and return an empty prefix as Done.
// Both report Incomplete when the class runs to the end of the buffer, since
// more input could extend the match.
package scan

import "github.com/coregx/lexsimd/result"

// unroll is the number of predicate tests per loop iteration.
const unroll = 8

// While1 returns the longest non-empty prefix of input whose bytes satisfy
// pred.
func While1(input []byte, pred func(byte) bool) result.Outcome[[]byte] {
	return outcome(input, prefixLen(input, pred), true)
}

// While returns the longest, possibly empty, prefix of input whose bytes
// satisfy pred.
func While(input []byte, pred func(byte) bool) result.Outcome[[]byte] {
	return outcome(input, prefixLen(input, pred), false)
}

// While1Reference is the byte-by-byte form of While1.
func While1Reference(input []byte, pred func(byte) bool) result.Outcome[[]byte] {
	return outcome(input, referenceLen(input, pred), true)
}

// WhileReference is the byte-by-byte form of While.
func WhileReference(input []byte, pred func(byte) bool) result.Outcome[[]byte] {
	return outcome(input, referenceLen(input, pred), false)
}

// outcome maps a prefix length to the streaming result.
func outcome(input []byte, n int, oneOrMore bool) result.Outcome[[]byte] {
	switch {
	case len(input) == 0:
		return result.Need[[]byte](1)
	case n == len(input):
		return result.NeedUnknown[[]byte]()
	case n == 0 && oneOrMore:
		return result.Fail[[]byte](result.NoMatch)
	default:
		return result.Ok(input[n:], input[:n])
	}
}

// prefixLen counts leading bytes satisfying pred, testing eight bytes per
// iteration while at least eight remain.
func prefixLen(input []byte, pred func(byte) bool) int {
	i := 0
	for len(input)-i >= unroll {
		b := input[i : i+unroll : i+unroll]
		switch {
		case !pred(b[0]):
			return i
		case !pred(b[1]):
			return i + 1
		case !pred(b[2]):
			return i + 2
		case !pred(b[3]):
			return i + 3
		case !pred(b[4]):
			return i + 4
		case !pred(b[5]):
			return i + 5
		case !pred(b[6]):
			return i + 6
		case !pred(b[7]):
			return i + 7
		}
		i += unroll
	}
	return i + referenceLen(input[i:], pred)
}

func referenceLen(input []byte, pred func(byte) bool) int {
	for i, c := range input {
		if !pred(c) {
			return i
		}
	}
	return len(input)
}
