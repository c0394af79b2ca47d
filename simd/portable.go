package simd

import "math/bits"

// portableKernel runs the vector algorithms on the scalar lane model.
type portableKernel struct{}

func (portableKernel) Name() string { return "portable" }

func (portableKernel) ShuffleCompare(window *[16]byte, idx, want *[32]byte) uint32 {
	return Broadcast128(window).ShuffleBytes(idx).CmpEq(want).MoveMask()
}

func (portableKernel) IndexRanges(rs *Ranges, data []byte) int {
	off := 0
	for ; len(data)-off >= LaneBytes; off += LaneBytes {
		if m := LoadReg16(data[off:]).InRanges(rs).MoveMask(); m != 0 {
			return off + bits.TrailingZeros16(m)
		}
	}
	return off
}

func (portableKernel) Mismatch(a, b []byte) int {
	n := min(len(a), len(b))
	off := 0
	for ; n-off >= LaneBytes; off += LaneBytes {
		eq := LoadReg16(a[off:]).CmpEq(LoadReg16(b[off:])).MoveMask()
		if eq != 0xFFFF {
			return off + bits.TrailingZeros16(^eq)
		}
	}
	return off
}
