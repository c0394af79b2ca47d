package scan

// Table is a 256-entry byte membership table.
//
// Indexing a table is usually faster than evaluating a compound predicate,
// and a table built once from a predicate behaves identically to it.
type Table [256]bool

// MakeTable evaluates pred for every byte value.
func MakeTable(pred func(byte) bool) *Table {
	var t Table
	for c := range t {
		t[c] = pred(byte(c))
	}
	return &t
}

// Contains reports whether c is in the table. It has the predicate shape
// expected by While1 and While.
func (t *Table) Contains(c byte) bool {
	return t[c]
}

// Count returns the number of member bytes.
func (t *Table) Count() int {
	n := 0
	for _, ok := range t {
		if ok {
			n++
		}
	}
	return n
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlphanumeric reports whether c is an ASCII letter or digit.
func IsAlphanumeric(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsToken reports whether c is a visible ASCII character (0x21..0x7E), the
// byte class of HTTP request targets and header names.
func IsToken(c byte) bool {
	return c > 0x20 && c < 0x7F
}

// IsHeaderValue reports whether c may appear in an HTTP header value: tab or
// any byte from 0x20 up except DEL.
func IsHeaderValue(c byte) bool {
	return c == '\t' || (c > 0x1F && c != 0x7F)
}

// Prebuilt tables and range sets for the built-in classes.
var (
	AlphaTable        = MakeTable(IsAlpha)
	DigitTable        = MakeTable(IsDigit)
	AlphanumericTable = MakeTable(IsAlphanumeric)
	TokenTable        = MakeTable(IsToken)
	HeaderValueTable  = MakeTable(IsHeaderValue)

	// TokenRanges stops at control characters, space, DEL and non-ASCII.
	TokenRanges = MustRangeSet(Range{0x00, 0x20}, Range{0x7F, 0xFF})

	// HeaderValueRanges stops at control characters other than tab, and DEL.
	HeaderValueRanges = MustRangeSet(Range{0x00, 0x08}, Range{0x0A, 0x1F}, Range{0x7F, 0x7F})

	// AlphanumericRanges stops at every byte outside [0-9A-Za-z].
	AlphanumericRanges = MustRangeSet(
		Range{0x00, '0' - 1}, Range{'9' + 1, 'A' - 1}, Range{'Z' + 1, 'a' - 1}, Range{'z' + 1, 0xFF})
)
