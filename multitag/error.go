package multitag

import (
	"errors"
	"fmt"

	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/simd"
)

// Candidate validation errors
var (
	// ErrNoCandidates indicates an empty candidate list.
	ErrNoCandidates = errors.New("candidate set is empty")

	// ErrEmptyCandidate indicates a zero-length candidate.
	ErrEmptyCandidate = errors.New("candidate is empty")

	// ErrCandidateTooLong indicates a candidate longer than one 128-bit lane.
	ErrCandidateTooLong = fmt.Errorf("candidate longer than %d bytes", simd.LaneBytes)
)

// CandidateError reports a single invalid candidate.
type CandidateError struct {
	// Index is the candidate position, -1 when the error concerns the list.
	Index int
	Err   error
}

// Error implements the error interface.
func (e *CandidateError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid candidate set: %v", e.Err)
	}
	return fmt.Sprintf("invalid candidate %d: %v", e.Index, e.Err)
}

// Unwrap returns the cause.
func (e *CandidateError) Unwrap() error {
	return e.Err
}

// Is reports whether target is result.ErrInvalidCandidateSet.
func (e *CandidateError) Is(target error) bool {
	return target == result.ErrInvalidCandidateSet
}

// CapacityError reports a candidate set that does not fit in one register.
type CapacityError struct {
	Total int
	Width simd.Width
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	if !e.Width.Valid() {
		return fmt.Sprintf("invalid candidate set: unsupported register width %d", int(e.Width))
	}
	return fmt.Sprintf("invalid candidate set: %d bytes exceed register capacity %d", e.Total, int(e.Width))
}

// Unwrap returns result.ErrInvalidCandidateSet.
func (e *CapacityError) Unwrap() error {
	return result.ErrInvalidCandidateSet
}
