package multitag

import (
	"bytes"

	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/simd"
)

// Classify reports which candidate window starts with.
//
// The window must hold at least Width() bytes; shorter windows yield
// Incomplete with the missing byte count, since the vector load cannot read
// past the caller's buffer. On a match the outcome carries the candidate id
// and the bytes after that candidate. When several candidates match, the one
// inserted first wins.
//
// Algorithm, with cmp holding one equality bit per byte offset:
//
//	masked  = cmp &^ tail     // a run of ones can never carry past a tail
//	carried = masked + head   // a fully matching run carries into its tail
//	result  = carried & cmp & tail
//
// Adding the head bit to a candidate's run of equal bytes ripples a carry up
// to the (cleared) tail bit only if every byte before the tail matched. The
// final AND with cmp demands the tail byte itself matched.
func (t *Tables) Classify(k simd.Kernel, window []byte) result.Outcome[int] {
	w := int(t.width)
	if len(window) < w {
		return result.Need[int](w - len(window))
	}

	cmp := k.ShuffleCompare((*[16]byte)(window), &t.shuffle, &t.compare) & t.width.Mask()
	return t.resolve(window, cmp)
}

// resolve turns a comparison mask into an outcome.
func (t *Tables) resolve(window []byte, cmp uint32) result.Outcome[int] {
	masked := cmp &^ t.tail
	carried := masked + t.head
	matched := carried & cmp & t.tail
	if matched == 0 {
		return result.Fail[int](result.NoMatch)
	}

	id := t.ids[simd.FirstLane(matched)]
	if id == NoCandidate {
		return result.Fail[int](result.Invariant)
	}
	return result.Ok(window[t.lens[id]:], int(id))
}

// ClassifyReference is the naive linear implementation of Classify: it tries
// every candidate in insertion order. It applies the same window-length rule
// so both report identical outcomes.
func (t *Tables) ClassifyReference(window []byte) result.Outcome[int] {
	w := int(t.width)
	if len(window) < w {
		return result.Need[int](w - len(window))
	}
	for id, c := range t.set.candidates {
		if bytes.HasPrefix(window, c) {
			return result.Ok(window[len(c):], id)
		}
	}
	return result.Fail[int](result.NoMatch)
}
