package delim

import (
	"fmt"

	"github.com/coregx/lexsimd/result"
)

// Delimiter set construction errors. Both wrap result.ErrInvalidCandidateSet.
var (
	// ErrNoDelimiters indicates an empty delimiter list.
	ErrNoDelimiters = fmt.Errorf("%w: no delimiters", result.ErrInvalidCandidateSet)

	// ErrEmptyDelimiter indicates a zero-length delimiter.
	ErrEmptyDelimiter = fmt.Errorf("%w: empty delimiter", result.ErrInvalidCandidateSet)
)
