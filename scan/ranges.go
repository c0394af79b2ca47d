package scan

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/coregx/lexsimd/result"
	"github.com/coregx/lexsimd/simd"
)

// Range is an inclusive byte range [Lo, Hi].
type Range struct {
	Lo, Hi byte
}

// String returns the range in hex.
func (r Range) String() string {
	return fmt.Sprintf("[%#02x,%#02x]", r.Lo, r.Hi)
}

// RangeSet describes a byte class by the ranges at which a scan stops.
// A byte is accepted when it lies outside every range.
//
// For example the HTTP token class (0x21..0x7E) is the complement of the
// stop ranges [0x00,0x20] and [0x7F,0xFF].
//
// A RangeSet is immutable and safe for concurrent use.
type RangeSet struct {
	stops  simd.Ranges
	accept Table
}

// NewRangeSet builds a set from at most simd.MaxRanges stop ranges.
// Every bad range is reported.
func NewRangeSet(stops ...Range) (*RangeSet, error) {
	var err error
	if len(stops) > simd.MaxRanges {
		err = multierr.Append(err, fmt.Errorf("%w: %d > %d", ErrTooManyRanges, len(stops), simd.MaxRanges))
	}
	for i, r := range stops {
		if r.Lo > r.Hi {
			err = multierr.Append(err, fmt.Errorf("%w: range %d is %s", ErrInvalidRange, i, r))
		}
	}
	if err != nil {
		return nil, err
	}

	rs := &RangeSet{}
	for _, r := range stops {
		rs.stops.Add(r.Lo, r.Hi)
	}
	for c := range rs.accept {
		rs.accept[c] = !rs.stops.Contains(byte(c))
	}
	return rs, nil
}

// MustRangeSet is like NewRangeSet but panics on error.
// It simplifies initialization of package-level sets.
func MustRangeSet(stops ...Range) *RangeSet {
	rs, err := NewRangeSet(stops...)
	if err != nil {
		panic("scan: NewRangeSet: " + err.Error())
	}
	return rs
}

// Stops returns the stop ranges in insertion order.
func (rs *RangeSet) Stops() []Range {
	out := make([]Range, rs.stops.Len())
	for i := range out {
		out[i].Lo, out[i].Hi = rs.stops.Range(i)
	}
	return out
}

// Accepts reports whether a scan continues over c.
func (rs *RangeSet) Accepts(c byte) bool {
	return rs.accept[c]
}

// Table returns the 256-entry membership table of accepted bytes.
func (rs *RangeSet) Table() *Table {
	return &rs.accept
}

// Ranges1 returns the longest non-empty prefix of input whose bytes are
// accepted by rs. Whole 16-byte blocks go through k; the tail uses the
// membership table. A nil k scans everything through the table.
func Ranges1(k simd.Kernel, input []byte, rs *RangeSet) result.Outcome[[]byte] {
	return outcome(input, rangesLen(k, input, rs), true)
}

// Ranges is the zero-or-more form of Ranges1.
func Ranges(k simd.Kernel, input []byte, rs *RangeSet) result.Outcome[[]byte] {
	return outcome(input, rangesLen(k, input, rs), false)
}

func rangesLen(k simd.Kernel, input []byte, rs *RangeSet) int {
	if k == nil {
		return prefixLen(input, rs.accept.Contains)
	}

	// IndexRanges returns either a stop inside the blocks it covered or the
	// covered length itself.
	covered := len(input) &^ (simd.LaneBytes - 1)
	if i := k.IndexRanges(&rs.stops, input); i < covered {
		return i
	}
	return covered + prefixLen(input[covered:], rs.accept.Contains)
}

// RangesFor derives the stop ranges of pred: each maximal run of rejected
// bytes becomes one range. It fails with ErrTooManyRanges when pred rejects
// more than simd.MaxRanges separate runs.
func RangesFor(pred func(byte) bool) (*RangeSet, error) {
	var stops []Range
	for c := 0; c < 256; {
		if pred(byte(c)) {
			c++
			continue
		}
		lo := c
		for c < 256 && !pred(byte(c)) {
			c++
		}
		stops = append(stops, Range{Lo: byte(lo), Hi: byte(c - 1)})
	}
	if len(stops) > simd.MaxRanges {
		return nil, fmt.Errorf("%w: predicate rejects %d separate runs", ErrTooManyRanges, len(stops))
	}
	return NewRangeSet(stops...)
}
