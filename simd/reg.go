package simd

import "math/bits"

// Width is a vector register width in bytes.
type Width int

const (
	// Width16 is a 128-bit register (SSE).
	Width16 Width = 16

	// Width32 is a 256-bit register (AVX2).
	Width32 Width = 32
)

// LaneBytes is the width of one 128-bit lane. Byte gathers (PSHUFB) never
// cross a lane, so a single gather can only address this many input bytes.
const LaneBytes = 16

// Valid reports whether w is a supported register width.
func (w Width) Valid() bool {
	return w == Width16 || w == Width32
}

// Mask returns a bitmask with one bit per byte lane of w.
func (w Width) Mask() uint32 {
	if w >= Width32 {
		return 0xFFFFFFFF
	}
	return 1<<uint(w) - 1
}

// Reg16 is the scalar model of a 128-bit register: byte i is lane i.
type Reg16 [16]byte

// Reg32 is the scalar model of a 256-bit register made of two 128-bit lanes.
type Reg32 [32]byte

// LoadReg16 performs an unaligned 16-byte load from b.
// It panics if b holds fewer than 16 bytes, the same guard the hardware
// paths apply before issuing a real load.
func LoadReg16(b []byte) Reg16 {
	return Reg16(b[:16])
}

// LoadReg32 performs an unaligned 32-byte load from b.
func LoadReg32(b []byte) Reg32 {
	return Reg32(b[:32])
}

// Broadcast128 replicates a 16-byte block into both lanes (VBROADCASTI128).
func Broadcast128(lo *[16]byte) Reg32 {
	var r Reg32
	copy(r[:16], lo[:])
	copy(r[16:], lo[:])
	return r
}

// ShuffleBytes gathers bytes by index within each 128-bit lane (VPSHUFB).
// An index with the high bit set yields zero; otherwise its low 4 bits select
// a byte from the same lane.
func (r Reg32) ShuffleBytes(idx *[32]byte) Reg32 {
	var out Reg32
	for i, s := range idx {
		if s&0x80 != 0 {
			continue
		}
		lane := i &^ (LaneBytes - 1)
		out[i] = r[lane+int(s&0x0F)]
	}
	return out
}

// CmpEq compares bytes for equality (VPCMPEQB): 0xFF where equal, 0 otherwise.
func (r Reg32) CmpEq(o *[32]byte) Reg32 {
	var out Reg32
	for i := range r {
		if r[i] == o[i] {
			out[i] = 0xFF
		}
	}
	return out
}

// MoveMask collects the high bit of every byte (VPMOVMSKB); bit i is byte i.
func (r Reg32) MoveMask() uint32 {
	var m uint32
	for i, b := range r {
		m |= uint32(b>>7) << uint(i)
	}
	return m
}

// CmpEq compares bytes for equality (PCMPEQB).
func (r Reg16) CmpEq(o Reg16) Reg16 {
	var out Reg16
	for i := range r {
		if r[i] == o[i] {
			out[i] = 0xFF
		}
	}
	return out
}

// InRanges marks bytes that fall inside any of rs (PCMPESTRI range mode).
func (r Reg16) InRanges(rs *Ranges) Reg16 {
	var out Reg16
	for i, b := range r {
		if rs.Contains(b) {
			out[i] = 0xFF
		}
	}
	return out
}

// MoveMask collects the high bit of every byte (PMOVMSKB).
func (r Reg16) MoveMask() uint16 {
	var m uint16
	for i, b := range r {
		m |= uint16(b>>7) << uint(i)
	}
	return m
}

// FirstLane returns the index of the lowest set bit of a movemask, or 32 if
// mask is zero.
func FirstLane(mask uint32) int {
	return bits.TrailingZeros32(mask)
}

// LastLane returns the index of the highest set bit of a movemask, or -1 if
// mask is zero.
func LastLane(mask uint32) int {
	return 31 - bits.LeadingZeros32(mask)
}
