package multitag

import (
	"github.com/coregx/lexsimd/internal/conv"
	"github.com/coregx/lexsimd/simd"
)

// NoCandidate marks a byte offset where no candidate ends.
const NoCandidate = 0xFF

// Tables holds the precomputed register images for one candidate set.
//
// Layout for candidates "Acce", "Cont", "Host" (width 16):
//
//	offset   0 1 2 3 4 5 6 7 8 9 10 11 12..15
//	compare  A c c e C o n t H o s  t  0
//	shuffle  0 1 2 3 0 1 2 3 0 1 2  3  0
//	head     1 . . . 1 . . . 1 . .  .  .
//	tail     . . . 1 . . . 1 . . .  1  .
//	ids      - - - 0 - - - 1 - - -  2  -
//
// Tables are read-only after Build and may be shared between goroutines.
type Tables struct {
	compare [32]byte
	shuffle [32]byte
	head    uint32
	tail    uint32
	ids     [32]uint8
	lens    [32]uint8
	width   simd.Width
	set     *CandidateSet
}

// Build lays out a validated candidate set. Candidate i occupies
// [offset, offset+len) where offset is the combined length of candidates
// 0..i-1.
func Build(set *CandidateSet) *Tables {
	t := &Tables{width: set.width, set: set}
	for i := range t.ids {
		t.ids[i] = NoCandidate
	}

	offset := 0
	for id, c := range set.candidates {
		copy(t.compare[offset:], c)
		for j := range c {
			t.shuffle[offset+j] = conv.IntToUint8(j)
		}
		last := offset + len(c) - 1
		t.head |= conv.BitAt(offset)
		t.tail |= conv.BitAt(last)
		t.ids[last] = conv.IntToUint8(id)
		t.lens[id] = conv.IntToUint8(len(c))
		offset += len(c)
	}
	return t
}

// Compile validates candidates and builds their tables.
func Compile(width simd.Width, candidates ...[]byte) (*Tables, error) {
	set, err := NewCandidateSet(width, candidates...)
	if err != nil {
		return nil, err
	}
	return Build(set), nil
}

// MustCompile is like Compile but panics on a configuration error.
// It simplifies initialization of package-level tables.
func MustCompile(width simd.Width, candidates ...[]byte) *Tables {
	t, err := Compile(width, candidates...)
	if err != nil {
		panic("multitag: Compile: " + err.Error())
	}
	return t
}

// Width returns the register width the tables were built for.
func (t *Tables) Width() simd.Width {
	return t.width
}

// Set returns the candidate set the tables were built from.
func (t *Tables) Set() *CandidateSet {
	return t.set
}

// CandidateLen returns the number of bytes a match of candidate id consumes.
func (t *Tables) CandidateLen(id int) int {
	return int(t.lens[id])
}

// CompareBuffer returns a copy of the comparison register image.
func (t *Tables) CompareBuffer() [32]byte { return t.compare }

// ShuffleMap returns a copy of the byte-gather index register image.
func (t *Tables) ShuffleMap() [32]byte { return t.shuffle }

// HeadBits returns the bitset of candidate first-byte offsets.
func (t *Tables) HeadBits() uint32 { return t.head }

// TailBits returns the bitset of candidate last-byte offsets.
func (t *Tables) TailBits() uint32 { return t.tail }

// IDAt returns the candidate id whose last byte sits at offset, or
// NoCandidate.
func (t *Tables) IDAt(offset int) int {
	return int(t.ids[offset])
}
