// Package result defines the streaming match protocol shared by every matcher
// in lexsimd.
//
// A matcher never returns a Go error for an ordinary parse outcome. It returns
// an Outcome whose Status is one of:
//   - Done: the matcher consumed a prefix; Rest is the unconsumed suffix
//   - Error: nothing matched at this position (the host parser may backtrack)
//   - Incomplete: the available bytes cannot decide; feed more input and retry
//     from the same starting position
//
// Incomplete is not a failure. Callers must switch on Status instead of
// treating every non-Done outcome alike.
package result

import "fmt"

// Status is the tri-state result of a streaming match.
type Status uint8

const (
	// Done means the match succeeded.
	Done Status = iota + 1

	// Error means no match exists at this position.
	Error

	// Incomplete means more input is required to decide.
	Incomplete
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Done:
		return "Done"
	case Error:
		return "Error"
	case Incomplete:
		return "Incomplete"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Outcome is the result of one matcher invocation.
//
// The zero value is not a valid outcome; construct outcomes with Ok, Fail,
// Need and NeedUnknown.
type Outcome[T any] struct {
	// Status tells which of the remaining fields are meaningful.
	Status Status

	// Rest is the unconsumed suffix of the input (Done only).
	Rest []byte

	// Value is the matched value (Done only).
	Value T

	// Kind classifies the failure (Error only).
	Kind ErrorKind

	// needed is the number of additional bytes required, 0 if unknown
	// (Incomplete only).
	needed int
}

// Ok returns a Done outcome.
func Ok[T any](rest []byte, value T) Outcome[T] {
	return Outcome[T]{Status: Done, Rest: rest, Value: value}
}

// Fail returns an Error outcome of the given kind.
func Fail[T any](kind ErrorKind) Outcome[T] {
	return Outcome[T]{Status: Error, Kind: kind}
}

// Need returns an Incomplete outcome that asks for n more bytes.
// A non-positive n is reported as unknown.
func Need[T any](n int) Outcome[T] {
	if n < 0 {
		n = 0
	}
	return Outcome[T]{Status: Incomplete, needed: n}
}

// NeedUnknown returns an Incomplete outcome without a size hint.
func NeedUnknown[T any]() Outcome[T] {
	return Outcome[T]{Status: Incomplete}
}

// IsDone reports whether the outcome is Done.
func (o Outcome[T]) IsDone() bool { return o.Status == Done }

// IsError reports whether the outcome is Error.
func (o Outcome[T]) IsError() bool { return o.Status == Error }

// IsIncomplete reports whether the outcome is Incomplete.
func (o Outcome[T]) IsIncomplete() bool { return o.Status == Incomplete }

// Needed returns the number of additional bytes an Incomplete outcome asks
// for. known is false when the matcher cannot tell (or the outcome is not
// Incomplete).
func (o Outcome[T]) Needed() (n int, known bool) {
	if o.Status != Incomplete || o.needed == 0 {
		return 0, false
	}
	return o.needed, true
}

// Err returns the sentinel error for an Error outcome and nil otherwise.
// Incomplete outcomes return nil: they are not failures.
func (o Outcome[T]) Err() error {
	if o.Status != Error {
		return nil
	}
	return o.Kind.Err()
}

// String formats the outcome for test failures and debugging.
func (o Outcome[T]) String() string {
	switch o.Status {
	case Done:
		return fmt.Sprintf("Done(rest=%q, value=%v)", o.Rest, o.Value)
	case Error:
		return fmt.Sprintf("Error(%s)", o.Kind)
	case Incomplete:
		if n, ok := o.Needed(); ok {
			return fmt.Sprintf("Incomplete(needed=%d)", n)
		}
		return "Incomplete(unknown)"
	default:
		return o.Status.String()
	}
}
