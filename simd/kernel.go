// Package simd provides the fixed-width vector primitives behind lexsimd's
// matchers.
//
// The primitives are grouped in a Kernel. Two kernels exist:
//   - Portable: built from the Reg16/Reg32 scalar lane model, always available
//   - Accelerated: AVX2 + SSE4.2 assembly on amd64, selected at runtime when
//     the CPU reports both extensions (see golang.org/x/sys/cpu)
//
// Both kernels compute bit-identical results, which lets callers run the same
// algorithm on either and lets tests check one against the other.
//
// Build with the purego tag to exclude the assembly kernel entirely.
package simd

//go:generate go run ./asm -out kernel_amd64.s -stubs kernel_stub_amd64.go -pkg simd

// Kernel is a set of fixed-width byte primitives.
//
// Kernels are stateless and safe for concurrent use. Every method guards its
// own loads: IndexRanges and Mismatch only read whole 16-byte blocks that lie
// inside the slices they are given.
type Kernel interface {
	// Name identifies the kernel ("portable", "avx2").
	Name() string

	// ShuffleCompare broadcasts window into both 128-bit lanes, gathers its
	// bytes by idx within each lane, compares the result with want and
	// returns the 32-bit movemask (bit i is byte i).
	ShuffleCompare(window *[16]byte, idx, want *[32]byte) uint32

	// IndexRanges scans whole 16-byte blocks of data and returns the index
	// of the first byte inside rs. If no byte of those blocks is inside rs it
	// returns the number of bytes covered (len(data) rounded down to a
	// multiple of 16); the caller finishes the tail.
	IndexRanges(rs *Ranges, data []byte) int

	// Mismatch compares whole 16-byte blocks of a and b (up to the shorter
	// length) and returns the index of the first differing byte. If those
	// blocks are equal it returns the number of bytes covered.
	Mismatch(a, b []byte) int
}

// Portable returns the kernel built on the scalar lane model.
func Portable() Kernel {
	return portableKernel{}
}

// Accelerated returns the hardware kernel, or nil if this CPU or build
// cannot run it.
func Accelerated() Kernel {
	return accelerated()
}

// Default returns the accelerated kernel when available and the portable one
// otherwise.
func Default() Kernel {
	if k := Accelerated(); k != nil {
		return k
	}
	return Portable()
}

// Lookup returns the kernel with the given name if it can run here.
func Lookup(name string) (Kernel, bool) {
	switch name {
	case "portable":
		return Portable(), true
	default:
		if k := Accelerated(); k != nil && k.Name() == name {
			return k, true
		}
		return nil, false
	}
}
