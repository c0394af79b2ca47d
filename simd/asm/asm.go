package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

func main() {
	ConstraintExpr("amd64")
	ConstraintExpr("!purego")

	shuffleCompare()
	indexRanges()
	mismatch()

	Generate()
}

// shuffleCompare emits the classifier's load/gather/compare/movemask step.
func shuffleCompare() {
	TEXT("shuffleCompareAVX2", NOSPLIT, "func(window *[16]byte, idx *[32]byte, want *[32]byte) uint32")
	Doc("shuffleCompareAVX2 broadcasts 16 window bytes to both lanes, gathers them by idx and returns the equality movemask against want.")

	window := Mem{Base: Load(Param("window"), GP64())}
	idx := Mem{Base: Load(Param("idx"), GP64())}
	want := Mem{Base: Load(Param("want"), GP64())}

	v := YMM()
	Comment("Same 16 input bytes in both lanes")
	VBROADCASTI128(window, v)

	/*
		candidates "Host" at 0 and "Cont" at 4, window "Content-Length: "

		broadcast | C o n t e n t - L e n g t h :   | C o n t ...
		idx       | 0 1 2 3 0 1 2 3 ...
		shuffled  | C o n t C o n t ...
		want      | H o s t C o n t ...
		cmpeq     | 0 1 0 1 1 1 1 1 ...   (one bit per byte after movemask)
	*/
	Comment("Align the window start to every candidate slot")
	VPSHUFB(idx, v, v)
	VPCMPEQB(want, v, v)

	mask := GP32()
	VPMOVMSKB(v, mask)
	Store(mask, ReturnIndex(0))
	VZEROUPPER()
	RET()
}

// indexRanges emits the PCMPESTRI range-mode scan over whole 16-byte blocks.
// PCMPESTRI reads its lengths from EAX/EDX and writes ECX, so physical
// registers are used throughout.
func indexRanges() {
	TEXT("indexRangesSSE42", NOSPLIT, "func(ranges *[16]byte, n int, data []byte) int")
	Doc("indexRangesSSE42 returns the index of the first byte of data inside the packed ranges, scanning whole 16-byte blocks only.")

	Load(Param("ranges"), reg.RSI)
	Load(Param("n"), reg.RAX)
	Load(Param("data").Base(), reg.RDI)
	Load(Param("data").Len(), reg.RBX)
	MOVOU(Mem{Base: reg.RSI}, reg.X0)
	MOVQ(U32(16), reg.RDX)
	XORQ(reg.R8, reg.R8)

	Label("ranges_loop")
	Comment("Stop before a load that would cross the end of data")
	LEAQ(Mem{Base: reg.R8, Disp: 16}, reg.R9)
	CMPQ(reg.R9, reg.RBX)
	JA(LabelRef("ranges_done"))
	MOVOU(Mem{Base: reg.RDI, Index: reg.R8, Scale: 1}, reg.X1)

	Comment("_SIDD_UBYTE_OPS | _SIDD_CMP_RANGES | _SIDD_LEAST_SIGNIFICANT")
	PCMPESTRI(U8(0x04), reg.X1, reg.X0)
	CMPQ(reg.RCX, U8(16))
	JNE(LabelRef("ranges_found"))
	MOVQ(reg.R9, reg.R8)
	JMP(LabelRef("ranges_loop"))

	Label("ranges_found")
	ADDQ(reg.RCX, reg.R8)

	Label("ranges_done")
	Store(reg.R8, ReturnIndex(0))
	RET()
}

// mismatch emits the PCMPESTRI equal-each scan used by the tag matcher.
func mismatch() {
	TEXT("mismatchSSE42", NOSPLIT, "func(a []byte, b []byte) int")
	Doc("mismatchSSE42 returns the index of the first differing byte of a and b, scanning whole 16-byte blocks of a only.")

	Load(Param("a").Base(), reg.RSI)
	Load(Param("a").Len(), reg.RBX)
	Load(Param("b").Base(), reg.RDI)
	MOVQ(U32(16), reg.RAX)
	MOVQ(U32(16), reg.RDX)
	XORQ(reg.R8, reg.R8)

	Label("mismatch_loop")
	LEAQ(Mem{Base: reg.R8, Disp: 16}, reg.R9)
	CMPQ(reg.R9, reg.RBX)
	JA(LabelRef("mismatch_done"))
	MOVOU(Mem{Base: reg.RSI, Index: reg.R8, Scale: 1}, reg.X0)
	MOVOU(Mem{Base: reg.RDI, Index: reg.R8, Scale: 1}, reg.X1)

	Comment("_SIDD_UBYTE_OPS | _SIDD_CMP_EQUAL_EACH | _SIDD_NEGATIVE_POLARITY")
	PCMPESTRI(U8(0x18), reg.X1, reg.X0)
	CMPQ(reg.RCX, U8(16))
	JNE(LabelRef("mismatch_found"))
	MOVQ(reg.R9, reg.R8)
	JMP(LabelRef("mismatch_loop"))

	Label("mismatch_found")
	ADDQ(reg.RCX, reg.R8)

	Label("mismatch_done")
	Store(reg.R8, ReturnIndex(0))
	RET()
}
