//go:build amd64 && !purego

package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasAVX2 gates the 256-bit shuffle/compare kernel.
	hasAVX2 = cpu.X86.HasAVX2

	// hasSSE42 gates the PCMPESTRI range and equal-each kernels.
	hasSSE42 = cpu.X86.HasSSE42
)

func accelerated() Kernel {
	if hasAVX2 && hasSSE42 {
		return avx2Kernel{}
	}
	return nil
}

// avx2Kernel dispatches to the assembly in kernel_amd64.s.
type avx2Kernel struct{}

func (avx2Kernel) Name() string { return "avx2" }

func (avx2Kernel) ShuffleCompare(window *[16]byte, idx, want *[32]byte) uint32 {
	return shuffleCompareAVX2(window, idx, want)
}

func (avx2Kernel) IndexRanges(rs *Ranges, data []byte) int {
	if len(data) < LaneBytes {
		return 0
	}
	return indexRangesSSE42(&rs.packed, rs.n, data)
}

func (avx2Kernel) Mismatch(a, b []byte) int {
	n := min(len(a), len(b))
	if n < LaneBytes {
		return 0
	}
	return mismatchSSE42(a[:n], b[:n])
}
