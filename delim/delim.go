// Package delim takes the bytes before the first occurrence of any of a fixed
// set of delimiters, with streaming semantics.
//
// A single delimiter is searched with simd.Memmem, delimiters starting with
// at most three distinct bytes with simd.Memchr2/Memchr3, and larger sets with
// an Aho-Corasick automaton, so the cost of a search does not grow with the
// number of delimiters:
//
//	crlf := delim.MustNew([]byte("\r\n"), []byte("\n"))
//	out := crlf.TakeUntil([]byte("Host: example.com\r\nAccept: */*"))
//	// out.Value == "Host: example.com", out.Rest == "\r\nAccept: */*"
//
// A delimiter is never consumed: Rest starts with it.
package delim

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/simd"
)

// searcher selects how Find locates the leftmost delimiter.
type searcher uint8

const (
	// useAutomaton runs the Aho-Corasick automaton.
	useAutomaton searcher = iota

	// useMemmem searches a single delimiter with simd.Memmem.
	useMemmem

	// useMemchr finds the up to three distinct first bytes with
	// simd.Memchr{,2,3} and verifies each candidate position.
	useMemchr
)

func (s searcher) String() string {
	switch s {
	case useMemmem:
		return "memmem"
	case useMemchr:
		return "memchr"
	default:
		return "automaton"
	}
}

// Set is a compiled delimiter set. It is immutable after New.
type Set struct {
	delims [][]byte
	auto   *ahocorasick.Automaton
	maxLen int
	how    searcher
	firsts []byte
}

// New compiles delims. Order matters when several delimiters start at the
// same position: the one given first wins.
func New(delims ...[]byte) (*Set, error) {
	var err error
	if len(delims) == 0 {
		err = multierr.Append(err, ErrNoDelimiters)
	}
	for i, d := range delims {
		if len(d) == 0 {
			err = multierr.Append(err, fmt.Errorf("%w: delimiter %d", ErrEmptyDelimiter, i))
		}
	}
	if err != nil {
		return nil, err
	}

	builder := ahocorasick.NewBuilder()
	for _, d := range delims {
		builder.AddPattern(d)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("delim: build automaton: %w", err)
	}

	s := &Set{
		delims: lo.Map(delims, func(d []byte, _ int) []byte { return bytes.Clone(d) }),
		auto:   auto,
		maxLen: lo.Max(lo.Map(delims, func(d []byte, _ int) int { return len(d) })),
		firsts: lo.Uniq(lo.Map(delims, func(d []byte, _ int) byte { return d[0] })),
	}
	switch {
	case len(delims) == 1:
		s.how = useMemmem
	case len(s.firsts) <= 3:
		s.how = useMemchr
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(delims ...[]byte) *Set {
	s, err := New(delims...)
	if err != nil {
		panic("delim: New: " + err.Error())
	}
	return s
}

// Len returns the number of delimiters.
func (s *Set) Len() int {
	return len(s.delims)
}

// Delimiter returns a copy of delimiter id.
func (s *Set) Delimiter(id int) []byte {
	return bytes.Clone(s.delims[id])
}

// Find returns the leftmost position at which a complete delimiter starts and
// the id of the first-given delimiter matching there. It returns (-1, -1)
// when input holds no complete delimiter.
func (s *Set) Find(input []byte) (pos, id int) {
	return s.find(input, s.how)
}

func (s *Set) find(input []byte, how searcher) (pos, id int) {
	if len(input) == 0 {
		return -1, -1
	}
	switch how {
	case useMemmem:
		if pos = simd.Memmem(input, s.delims[0]); pos < 0 {
			return -1, -1
		}
		return pos, 0
	case useMemchr:
		for from := 0; from < len(input); {
			i := s.memchr(input[from:])
			if i < 0 {
				return -1, -1
			}
			pos = from + i
			if id = s.idAt(input, pos); id >= 0 {
				return pos, id
			}
			from = pos + 1
		}
		return -1, -1
	}

	m := s.auto.Find(input, 0)
	if m == nil {
		return -1, -1
	}

	// The automaton may report the match that ends first. A delimiter
	// starting earlier ends no earlier, so it starts within maxLen of m.End.
	pos = m.Start
	for q := max(0, m.End-s.maxLen); q < m.Start; q++ {
		if s.idAt(input, q) >= 0 {
			pos = q
			break
		}
	}
	return pos, s.idAt(input, pos)
}

// memchr finds the next byte that can start a delimiter.
func (s *Set) memchr(input []byte) int {
	switch len(s.firsts) {
	case 1:
		return simd.Memchr(input, s.firsts[0])
	case 2:
		return simd.Memchr2(input, s.firsts[0], s.firsts[1])
	default:
		return simd.Memchr3(input, s.firsts[0], s.firsts[1], s.firsts[2])
	}
}

// idAt returns the first delimiter that input[at:] starts with, or -1.
func (s *Set) idAt(input []byte, at int) int {
	for id, d := range s.delims {
		if bytes.HasPrefix(input[at:], d) {
			return id
		}
	}
	return -1
}

// partialBefore reports whether some delimiter could start before end and
// run past the end of input.
func (s *Set) partialBefore(input []byte, end int) bool {
	for q := max(0, len(input)-s.maxLen+1); q < end; q++ {
		tail := input[q:]
		for _, d := range s.delims {
			if len(tail) < len(d) && bytes.HasPrefix(d, tail) {
				return true
			}
		}
	}
	return false
}

// TakeUntil returns the possibly empty prefix before the first delimiter.
//
// The outcome is Incomplete when no delimiter occurs, or when a delimiter
// could still complete with more input at an earlier position than the one
// found.
func (s *Set) TakeUntil(input []byte) result.Outcome[[]byte] {
	return s.take(input, false)
}

// TakeUntil1 is like TakeUntil but fails with NoMatch on an empty prefix.
func (s *Set) TakeUntil1(input []byte) result.Outcome[[]byte] {
	return s.take(input, true)
}

func (s *Set) take(input []byte, oneOrMore bool) result.Outcome[[]byte] {
	pos, _ := s.Find(input)
	if pos < 0 {
		return result.NeedUnknown[[]byte]()
	}
	if s.partialBefore(input, pos) {
		return result.NeedUnknown[[]byte]()
	}
	if pos == 0 && oneOrMore {
		return result.Fail[[]byte](result.NoMatch)
	}
	return result.Ok(input[pos:], input[:pos])
}

// TakeUntilReference is the naive form of TakeUntil: it tries every
// delimiter at every position.
func (s *Set) TakeUntilReference(input []byte) result.Outcome[[]byte] {
	for p := range input {
		tail := input[p:]
		if s.idAt(input, p) >= 0 {
			return result.Ok(tail, input[:p])
		}
		for _, d := range s.delims {
			if len(tail) < len(d) && bytes.HasPrefix(d, tail) {
				return result.NeedUnknown[[]byte]()
			}
		}
	}
	return result.NeedUnknown[[]byte]()
}
