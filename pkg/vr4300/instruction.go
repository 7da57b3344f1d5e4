// Package vr4300 implements a cycle-oriented model of the VR4300 MIPS-III
// integer pipeline used by the Nintendo 64: instruction decoding, the
// general-purpose and coprocessor-0 register files, and the five-stage
// IC/RF/EX/DC/WB pipeline engine with its single-slot branch delay.
package vr4300

import "fmt"

// Instruction wraps a raw 32-bit MIPS-III word and exposes the fixed-field
// accessors shared by every instruction format, plus the decoder-resolved
// variant, class and mnemonic.
type Instruction struct {
	word    uint32
	variant Variant
	class   Class
	mnem    string
}

// Word returns the raw 32-bit encoding.
func (i Instruction) Word() uint32 { return i.word }

// Opcode returns the primary 6-bit opcode field (bits 31:26).
func (i Instruction) Opcode() uint8 { return uint8((i.word >> 26) & 0x3f) }

// RS returns the 5-bit source register index (bits 25:21).
func (i Instruction) RS() uint8 { return uint8((i.word >> 21) & 0x1f) }

// RT returns the 5-bit target register index (bits 20:16).
func (i Instruction) RT() uint8 { return uint8((i.word >> 16) & 0x1f) }

// RD returns the 5-bit destination register index (bits 15:11).
func (i Instruction) RD() uint8 { return uint8((i.word >> 11) & 0x1f) }

// SA returns the 5-bit shift amount (bits 10:6).
func (i Instruction) SA() uint8 { return uint8((i.word >> 6) & 0x1f) }

// Funct returns the 6-bit function code (bits 5:0).
func (i Instruction) Funct() uint8 { return uint8(i.word & 0x3f) }

// Imm16 returns the raw, unextended 16-bit immediate/offset field (bits 15:0).
func (i Instruction) Imm16() uint16 { return uint16(i.word & 0xffff) }

// SignImm sign-extends the 16-bit immediate field to 64 bits.
func (i Instruction) SignImm() uint64 { return uint64(int64(int16(i.Imm16()))) }

// ZeroImm zero-extends the 16-bit immediate field to 64 bits.
func (i Instruction) ZeroImm() uint64 { return uint64(i.Imm16()) }

// Offset is an alias for SignImm used by load/store/branch addressing.
func (i Instruction) Offset() int64 { return int64(int16(i.Imm16())) }

// Target returns the 26-bit jump target field (bits 25:0).
func (i Instruction) Target() uint32 { return i.word & 0x3ffffff }

// Variant returns the decoder-resolved opcode variant.
func (i Instruction) Variant() Variant { return i.variant }

// Class returns the decoder-resolved instruction class.
func (i Instruction) Class() Class { return i.class }

// Mnemonic returns a short mnemonic, for debugging/disassembly only.
func (i Instruction) Mnemonic() string { return i.mnem }

// String renders the instruction roughly the way the decoded class expects
// its operands to be printed. It exists for step-tracing and is not used
// by any decode or execute path.
func (i Instruction) String() string {
	switch i.class {
	case ClassI:
		return fmt.Sprintf("%s r%d, r%d, %#x", i.mnem, i.RT(), i.RS(), i.Imm16())
	case ClassL, ClassS:
		return fmt.Sprintf("%s r%d, %#x(r%d)", i.mnem, i.RT(), i.Imm16(), i.RS())
	case ClassJ:
		return fmt.Sprintf("%s %#x", i.mnem, i.Target())
	case ClassB:
		return fmt.Sprintf("%s r%d, r%d, %d", i.mnem, i.RS(), i.RT(), i.Offset())
	case ClassR:
		return fmt.Sprintf("%s r%d, r%d, r%d", i.mnem, i.RD(), i.RS(), i.RT())
	case ClassC:
		return fmt.Sprintf("%sc0 r%d, r%d", i.mnem, i.RT(), i.RD())
	default:
		return fmt.Sprintf("%s %#08x", i.mnem, i.word)
	}
}

// Class classifies an instruction by which pipeline stages do work and
// where its result is written back.
type Class uint8

const (
	// ClassI is a plain immediate (I-type) instruction.
	ClassI Class = iota
	// ClassL is a load (I-type subset).
	ClassL
	// ClassS is a store (I-type subset).
	ClassS
	// ClassJ is a jump (J-type, includes JR/JALR).
	ClassJ
	// ClassB is a branch (J-type subset).
	ClassB
	// ClassR is a register-to-register (R-type) instruction.
	ClassR
	// ClassC is a coprocessor instruction.
	ClassC
)

func (c Class) String() string {
	switch c {
	case ClassI:
		return "I"
	case ClassL:
		return "L"
	case ClassS:
		return "S"
	case ClassJ:
		return "J"
	case ClassB:
		return "B"
	case ClassR:
		return "R"
	case ClassC:
		return "C"
	default:
		return "?"
	}
}

// Decode resolves a 32-bit word into an Instruction. Decode is total: every
// possible word resolves to some variant, falling back to the RESERVED
// sentinel when no table entry matches.
func Decode(word uint32) Instruction {
	i := Instruction{word: word}
	e := lookup(word)
	i.variant = e.variant
	i.class = e.class
	i.mnem = e.mnemonic
	return i
}
