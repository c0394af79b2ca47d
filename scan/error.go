package scan

import "errors"

// Range set construction errors
var (
	// ErrTooManyRanges indicates more stop ranges than one PCMPESTRI operand
	// holds.
	ErrTooManyRanges = errors.New("too many ranges")

	// ErrInvalidRange indicates a range whose low bound exceeds its high bound.
	ErrInvalidRange = errors.New("invalid range")
)
