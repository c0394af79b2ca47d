package result

import (
	"errors"
	"fmt"
)

// Sentinel errors for the outcome kinds.
var (
	// ErrNoMatch indicates that no pattern matched at the current position.
	// It is a recoverable outcome used for alternation and backtracking.
	ErrNoMatch = errors.New("no match")

	// ErrInvalidCandidateSet indicates a malformed candidate set. It is only
	// produced at construction time.
	ErrInvalidCandidateSet = errors.New("invalid candidate set")

	// ErrInvariant indicates that precomputed tables are internally
	// inconsistent. It is never expected from tables built by this module.
	ErrInvariant = errors.New("internal invariant violated")
)

// ErrorKind classifies an Error outcome.
type ErrorKind uint8

const (
	// NoMatch means the input does not match at this position.
	NoMatch ErrorKind = iota + 1

	// InvalidCandidateSet means the matcher was configured with a bad set.
	InvalidCandidateSet

	// Invariant means matcher tables were found in an impossible state.
	Invariant
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case InvalidCandidateSet:
		return "InvalidCandidateSet"
	case Invariant:
		return "Invariant"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Err returns the sentinel error for the kind.
func (k ErrorKind) Err() error {
	switch k {
	case NoMatch:
		return ErrNoMatch
	case InvalidCandidateSet:
		return ErrInvalidCandidateSet
	case Invariant:
		return ErrInvariant
	default:
		return fmt.Errorf("unknown error kind %d", uint8(k))
	}
}
