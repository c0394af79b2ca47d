package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1. It is equivalent to bytes.Index.
//
// Candidates are found with Memchr on the needle's last byte, which in
// protocol delimiters ("\r\n", "\r\n\r\n", "--boundary") tends to be the most
// selective, and then verified in full.
//
// Example:
//
//	pos := simd.Memmem([]byte("Host: a\r\n\r\nbody"), []byte("\r\n\r\n"))
//	// pos == 7
func Memmem(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	last := needle[n-1]
	for from := n - 1; from < len(haystack); {
		i := Memchr(haystack[from:], last)
		if i < 0 {
			return -1
		}
		end := from + i + 1
		if bytes.Equal(haystack[end-n:end], needle) {
			return end - n
		}
		from = end
	}
	return -1
}
