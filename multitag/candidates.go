// Package multitag recognizes which of a small fixed set of byte strings a
// buffer starts with, in one vector pass.
//
// Construction happens once: NewCandidateSet validates the alternatives and
// Build lays them out into Tables (the "mask builder"). Classification then
// runs a shuffle, a byte compare and a carry-propagation trick on a single
// register to find the matching alternative:
//
//	tables := multitag.MustCompile(simd.Width32,
//	    []byte("Acce"), []byte("Cont"), []byte("Date"), []byte("Host"))
//
//	out := tables.Classify(simd.Default(), []byte("Host: example.com\r\n\r\n..."))
//	if out.IsDone() {
//	    // out.Value == 3, out.Rest == ": example.com\r\n..."
//	}
//
// Tables are immutable and safe for concurrent use.
package multitag

import (
	"bytes"

	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/coregx/lexsimd/simd"
)

// CandidateSet is an ordered, immutable list of alternatives.
// The index of an alternative is its candidate id.
type CandidateSet struct {
	width      simd.Width
	candidates [][]byte
}

// NewCandidateSet validates and copies the candidates for a register of the
// given width.
//
// Every problem is reported: one *CandidateError per bad candidate and a
// *CapacityError if the combined length does not fit, combined with multierr.
// All of them satisfy errors.Is(err, result.ErrInvalidCandidateSet).
func NewCandidateSet(width simd.Width, candidates ...[]byte) (*CandidateSet, error) {
	if !width.Valid() {
		return nil, &CapacityError{Width: width}
	}

	var err error
	if len(candidates) == 0 {
		err = multierr.Append(err, &CandidateError{Index: -1, Err: ErrNoCandidates})
	}
	for i, c := range candidates {
		switch {
		case len(c) == 0:
			err = multierr.Append(err, &CandidateError{Index: i, Err: ErrEmptyCandidate})
		case len(c) > simd.LaneBytes:
			err = multierr.Append(err, &CandidateError{Index: i, Err: ErrCandidateTooLong})
		}
	}

	total := lo.SumBy(candidates, func(c []byte) int { return len(c) })
	if total > int(width) {
		err = multierr.Append(err, &CapacityError{Total: total, Width: width})
	}
	if err != nil {
		return nil, err
	}

	return &CandidateSet{
		width:      width,
		candidates: lo.Map(candidates, func(c []byte, _ int) []byte { return bytes.Clone(c) }),
	}, nil
}

// Width returns the register width the set was validated against.
func (s *CandidateSet) Width() simd.Width {
	return s.width
}

// Len returns the number of candidates.
func (s *CandidateSet) Len() int {
	return len(s.candidates)
}

// Candidate returns a copy of candidate id.
func (s *CandidateSet) Candidate(id int) []byte {
	return bytes.Clone(s.candidates[id])
}

// TotalLen returns the combined length of all candidates.
func (s *CandidateSet) TotalLen() int {
	return lo.SumBy(s.candidates, func(c []byte) int { return len(c) })
}
