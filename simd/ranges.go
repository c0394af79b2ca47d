package simd

// MaxRanges is the number of inclusive byte ranges that fit in one 128-bit
// PCMPESTRI operand (two bytes per range).
const MaxRanges = LaneBytes / 2

// Ranges is a list of inclusive byte ranges packed in the layout PCMPESTRI
// range mode expects: lo0, hi0, lo1, hi1, ...
//
// The zero value is an empty list that contains no byte.
type Ranges struct {
	packed [LaneBytes]byte
	n      int // bytes used, two per range
}

// Add appends the inclusive range [lo, hi]. It returns false if the list is
// already full or lo > hi.
func (r *Ranges) Add(lo, hi byte) bool {
	if lo > hi || r.n >= LaneBytes {
		return false
	}
	r.packed[r.n] = lo
	r.packed[r.n+1] = hi
	r.n += 2
	return true
}

// Len returns the number of ranges.
func (r *Ranges) Len() int {
	return r.n / 2
}

// Range returns the i-th range.
func (r *Ranges) Range(i int) (lo, hi byte) {
	return r.packed[2*i], r.packed[2*i+1]
}

// Contains reports whether b falls inside any range.
func (r *Ranges) Contains(b byte) bool {
	for i := 0; i < r.n; i += 2 {
		if b >= r.packed[i] && b <= r.packed[i+1] {
			return true
		}
	}
	return false
}
