package vr4300

// Variant identifies a specific MIPS-III opcode after the decoder has
// walked the SPECIAL/REGIMM/COP0 sub-tables. Decoder tables below hold
// only these tags plus a class and a mnemonic; all behavior lives in
// Exec, kept in its own file.
type Variant uint16

const (
	RESERVED Variant = iota

	// Primary-opcode leaves.
	OpJ
	OpJAL
	OpBEQ
	OpBNE
	OpBLEZ
	OpBGTZ
	OpADDI
	OpADDIU
	OpSLTI
	OpSLTIU
	OpANDI
	OpORI
	OpXORI
	OpLUI
	OpBEQL
	OpBNEL
	OpBLEZL
	OpBGTZL
	OpDADDI
	OpDADDIU
	OpLDL
	OpLDR
	OpLB
	OpLH
	OpLWL
	OpLW
	OpLBU
	OpLHU
	OpLWR
	OpLWU
	OpSB
	OpSH
	OpSWL
	OpSW
	OpSDL
	OpSDR
	OpSWR
	OpCACHE
	OpLL
	OpLWC1
	OpLWC2
	OpLLD
	OpLDC1
	OpLDC2
	OpLD
	OpSC
	OpSWC1
	OpSWC2
	OpSCD
	OpSDC1
	OpSDC2
	OpSD

	// SPECIAL-table leaves.
	OpSLL
	OpSRL
	OpSRA
	OpSLLV
	OpSRLV
	OpSRAV
	OpJR
	OpJALR
	OpSYSCALL
	OpBREAK
	OpSYNC
	OpMFHI
	OpMTHI
	OpMFLO
	OpMTLO
	OpDSLLV
	OpDSRLV
	OpDSRAV
	OpMULT
	OpMULTU
	OpDIV
	OpDIVU
	OpDMULT
	OpDMULTU
	OpDDIV
	OpDDIVU
	OpADD
	OpADDU
	OpSUB
	OpSUBU
	OpAND
	OpOR
	OpXOR
	OpNOR
	OpSLT
	OpSLTU
	OpDADD
	OpDADDU
	OpDSUB
	OpDSUBU
	OpTGE
	OpTGEU
	OpTLT
	OpTLTU
	OpTEQ
	OpTNE
	OpDSLL
	OpDSRL
	OpDSRA
	OpDSLL32
	OpDSRL32
	OpDSRA32

	// REGIMM-table leaves.
	OpBLTZ
	OpBGEZ
	OpBLTZL
	OpBGEZL
	OpTGEI
	OpTGEIU
	OpTLTI
	OpTLTIU
	OpTEQI
	OpTNEI
	OpBLTZAL
	OpBGEZAL
	OpBLTZALL
	OpBGEZALL

	// COP0 rs-table leaves.
	OpMFC0
	OpDMFC0
	OpCFC0
	OpMTC0
	OpDMTC0
	OpCTC0

	// COP0 bc sub-table leaves.
	OpBC0F
	OpBC0T
	OpBC0FL
	OpBC0TL

	// COP0 co sub-table leaves.
	OpTLBR
	OpTLBWI
	OpTLBWR
	OpTLBP
	OpERET

	// COP1/COP2: recognized, operand decode out of scope. Exec's default
	// case reports them as unimplemented rather than reserved.
	OpCOP1
	OpCOP2
)

// entry is a data-only decoder table row: a tag, a class, and a mnemonic.
// No behavior is reachable from an entry; Exec dispatches on the tag alone.
type entry struct {
	variant  Variant
	class    Class
	mnemonic string
}

var reservedEntry = entry{variant: RESERVED, class: ClassR, mnemonic: "reserved"}

// Sub-opcode markers used only inside the primary table to redirect into a
// sub-table; they never escape lookup() as a resolved Instruction.Variant.
const (
	markerSpecial Variant = 0xff00 + iota
	markerRegimm
	markerCop0
)

var primaryTable = [64]entry{
	0o00: {markerSpecial, ClassR, "special"},
	0o01: {markerRegimm, ClassI, "regimm"},
	0o02: {OpJ, ClassJ, "j"},
	0o03: {OpJAL, ClassJ, "jal"},
	0o04: {OpBEQ, ClassB, "beq"},
	0o05: {OpBNE, ClassB, "bne"},
	0o06: {OpBLEZ, ClassB, "blez"},
	0o07: {OpBGTZ, ClassB, "bgtz"},
	0o10: {OpADDI, ClassI, "addi"},
	0o11: {OpADDIU, ClassI, "addiu"},
	0o12: {OpSLTI, ClassI, "slti"},
	0o13: {OpSLTIU, ClassI, "sltiu"},
	0o14: {OpANDI, ClassI, "andi"},
	0o15: {OpORI, ClassI, "ori"},
	0o16: {OpXORI, ClassI, "xori"},
	0o17: {OpLUI, ClassI, "lui"},
	0o20: {markerCop0, ClassC, "cop0"},
	0o21: {OpCOP1, ClassC, "cop1"},
	0o22: {OpCOP2, ClassC, "cop2"},
	0o24: {OpBEQL, ClassB, "beql"},
	0o25: {OpBNEL, ClassB, "bnel"},
	0o26: {OpBLEZL, ClassB, "blezl"},
	0o27: {OpBGTZL, ClassB, "bgtzl"},
	0o30: {OpDADDI, ClassI, "daddi"},
	0o31: {OpDADDIU, ClassI, "daddiu"},
	0o32: {OpLDL, ClassL, "ldl"},
	0o33: {OpLDR, ClassL, "ldr"},
	0o40: {OpLB, ClassL, "lb"},
	0o41: {OpLH, ClassL, "lh"},
	0o42: {OpLWL, ClassL, "lwl"},
	0o43: {OpLW, ClassL, "lw"},
	0o44: {OpLBU, ClassL, "lbu"},
	0o45: {OpLHU, ClassL, "lhu"},
	0o46: {OpLWR, ClassL, "lwr"},
	0o47: {OpLWU, ClassL, "lwu"},
	0o50: {OpSB, ClassS, "sb"},
	0o51: {OpSH, ClassS, "sh"},
	0o52: {OpSWL, ClassS, "swl"},
	0o53: {OpSW, ClassS, "sw"},
	0o54: {OpSDL, ClassS, "sdl"},
	0o55: {OpSDR, ClassS, "sdr"},
	0o56: {OpSWR, ClassS, "swr"},
	0o57: {OpCACHE, ClassI, "cache"},
	0o60: {OpLL, ClassL, "ll"},
	0o61: {OpLWC1, ClassL, "lwc1"},
	0o62: {OpLWC2, ClassL, "lwc2"},
	0o64: {OpLLD, ClassL, "lld"},
	0o65: {OpLDC1, ClassL, "ldc1"},
	0o66: {OpLDC2, ClassL, "ldc2"},
	0o67: {OpLD, ClassL, "ld"},
	0o70: {OpSC, ClassS, "sc"},
	0o71: {OpSWC1, ClassS, "swc1"},
	0o72: {OpSWC2, ClassS, "swc2"},
	0o74: {OpSCD, ClassS, "scd"},
	0o75: {OpSDC1, ClassS, "sdc1"},
	0o76: {OpSDC2, ClassS, "sdc2"},
	0o77: {OpSD, ClassS, "sd"},
}

var specialTable = [64]entry{
	0o00: {OpSLL, ClassR, "sll"},
	0o02: {OpSRL, ClassR, "srl"},
	0o03: {OpSRA, ClassR, "sra"},
	0o04: {OpSLLV, ClassR, "sllv"},
	0o06: {OpSRLV, ClassR, "srlv"},
	0o07: {OpSRAV, ClassR, "srav"},
	0o10: {OpJR, ClassJ, "jr"},
	0o11: {OpJALR, ClassJ, "jalr"},
	0o14: {OpSYSCALL, ClassR, "syscall"},
	0o15: {OpBREAK, ClassR, "break"},
	0o17: {OpSYNC, ClassR, "sync"},
	0o20: {OpMFHI, ClassR, "mfhi"},
	0o21: {OpMTHI, ClassR, "mthi"},
	0o22: {OpMFLO, ClassR, "mflo"},
	0o23: {OpMTLO, ClassR, "mtlo"},
	0o24: {OpDSLLV, ClassR, "dsllv"},
	0o26: {OpDSRLV, ClassR, "dsrlv"},
	0o27: {OpDSRAV, ClassR, "dsrav"},
	0o30: {OpMULT, ClassR, "mult"},
	0o31: {OpMULTU, ClassR, "multu"},
	0o32: {OpDIV, ClassR, "div"},
	0o33: {OpDIVU, ClassR, "divu"},
	0o34: {OpDMULT, ClassR, "dmult"},
	0o35: {OpDMULTU, ClassR, "dmultu"},
	0o36: {OpDDIV, ClassR, "ddiv"},
	0o37: {OpDDIVU, ClassR, "ddivu"},
	0o40: {OpADD, ClassR, "add"},
	0o41: {OpADDU, ClassR, "addu"},
	0o42: {OpSUB, ClassR, "sub"},
	0o43: {OpSUBU, ClassR, "subu"},
	0o44: {OpAND, ClassR, "and"},
	0o45: {OpOR, ClassR, "or"},
	0o46: {OpXOR, ClassR, "xor"},
	0o47: {OpNOR, ClassR, "nor"},
	0o52: {OpSLT, ClassR, "slt"},
	0o53: {OpSLTU, ClassR, "sltu"},
	0o54: {OpDADD, ClassR, "dadd"},
	0o55: {OpDADDU, ClassR, "daddu"},
	0o56: {OpDSUB, ClassR, "dsub"},
	0o57: {OpDSUBU, ClassR, "dsubu"},
	0o60: {OpTGE, ClassR, "tge"},
	0o61: {OpTGEU, ClassR, "tgeu"},
	0o62: {OpTLT, ClassR, "tlt"},
	0o63: {OpTLTU, ClassR, "tltu"},
	0o64: {OpTEQ, ClassR, "teq"},
	0o66: {OpTNE, ClassR, "tne"},
	0o70: {OpDSLL, ClassR, "dsll"},
	0o72: {OpDSRL, ClassR, "dsrl"},
	0o73: {OpDSRA, ClassR, "dsra"},
	0o74: {OpDSLL32, ClassR, "dsll32"},
	0o76: {OpDSRL32, ClassR, "dsrl32"},
	0o77: {OpDSRA32, ClassR, "dsra32"},
}

var regimmTable = [32]entry{
	0o00: {OpBLTZ, ClassB, "bltz"},
	0o01: {OpBGEZ, ClassB, "bgez"},
	0o02: {OpBLTZL, ClassB, "bltzl"},
	0o03: {OpBGEZL, ClassB, "bgezl"},
	0o10: {OpTGEI, ClassI, "tgei"},
	0o11: {OpTGEIU, ClassI, "tgeiu"},
	0o12: {OpTLTI, ClassI, "tlti"},
	0o13: {OpTLTIU, ClassI, "tltiu"},
	0o14: {OpTEQI, ClassI, "teqi"},
	0o16: {OpTNEI, ClassI, "tnei"},
	0o20: {OpBLTZAL, ClassB, "bltzal"},
	0o21: {OpBGEZAL, ClassB, "bgezal"},
	0o22: {OpBLTZALL, ClassB, "bltzall"},
	0o23: {OpBGEZALL, ClassB, "bgezall"},
}

var cop0RsTable = [32]entry{
	0o00: {OpMFC0, ClassC, "mfc0"},
	0o01: {OpDMFC0, ClassC, "dmfc0"},
	0o02: {OpCFC0, ClassC, "cfc0"},
	0o04: {OpMTC0, ClassC, "mtc0"},
	0o05: {OpDMTC0, ClassC, "dmtc0"},
	0o06: {OpCTC0, ClassC, "ctc0"},
}

var cop0BcTable = [4]entry{
	0: {OpBC0F, ClassB, "bc0f"},
	1: {OpBC0T, ClassB, "bc0t"},
	2: {OpBC0FL, ClassB, "bc0fl"},
	3: {OpBC0TL, ClassB, "bc0tl"},
}

var cop0CoTable = [64]entry{
	0o01: {OpTLBR, ClassC, "tlbr"},
	0o02: {OpTLBWI, ClassC, "tlbwi"},
	0o06: {OpTLBWR, ClassC, "tlbwr"},
	0o10: {OpTLBP, ClassC, "tlbp"},
	0o30: {OpERET, ClassC, "eret"},
}

// lookup walks the SPECIAL/REGIMM/COP0 sub-tables and returns the leaf
// entry for word. It never fails: unmatched slots resolve to RESERVED.
func lookup(word uint32) entry {
	i := Instruction{word: word}
	e := primaryTable[i.Opcode()]
	switch e.variant {
	case markerSpecial:
		return specialTable[i.Funct()]
	case markerRegimm:
		return regimmTable[i.RT()]
	case markerCop0:
		rs := i.RS()
		if rs == 0o10 {
			return cop0BcTable[i.RT()&0x3]
		}
		if rs == 0o20 {
			return cop0CoTable[i.Funct()]
		}
		return cop0RsTable[rs]
	case RESERVED:
		// zero value of Variant is RESERVED; an unfilled primary slot.
		return reservedEntry
	default:
		return e
	}
}
