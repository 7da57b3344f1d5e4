package vr4300

// ExecInput carries exactly the values an execute descriptor is allowed to
// see: the two RF-stage register reads, the instruction's own fields, and
// — for the second, DC-stage invocation of a load's descriptor — the word
// the memory controller returned. No descriptor reaches back into CPU or
// memory-controller state; everything it needs arrives here.
type ExecInput struct {
	PC     uint64      // PC at EX time: already advanced past this instruction
	RS, RT uint64      // RF-stage register reads
	Addr   uint64      // effective address from the EX-stage invocation (loads only)
	DC     uint64      // word loaded at DC (loads only)
	HaveDC bool        // true on the second, DC-stage invocation of a load
	In     Instruction // the decoded instruction itself
}

// ExecOutput is everything an execute descriptor can hand back to the
// pipeline: the computed value (destined for ex.ol), whether a branch/jump
// is taken, and whether the instruction links ra (or rd for JALR).
type ExecOutput struct {
	Value  uint64
	Branch bool
	Link   bool
}

// Exec evaluates the execute descriptor for in.In.Variant(). It is a pure
// function: the same input always yields the same output, and it never
// touches CPU or memory state directly.
func Exec(in ExecInput) (ExecOutput, error) {
	v := in.In.Variant()
	switch v {
	case RESERVED:
		return ExecOutput{}, ErrReservedInstruction

	// ---- Immediate (I-class) arithmetic -------------------------------
	case OpADDI, OpADDIU:
		return ExecOutput{Value: uint64(int64(in.RS) + int64(in.In.SignImm()))}, nil
	case OpDADDI, OpDADDIU:
		return ExecOutput{Value: in.RS + in.In.SignImm()}, nil
	case OpSLTI:
		if int64(in.RS) < int64(in.In.SignImm()) {
			return ExecOutput{Value: 1}, nil
		}
		return ExecOutput{Value: 0}, nil
	case OpSLTIU:
		if in.RS < in.In.SignImm() {
			return ExecOutput{Value: 1}, nil
		}
		return ExecOutput{Value: 0}, nil
	case OpANDI:
		return ExecOutput{Value: in.RS & in.In.ZeroImm()}, nil
	case OpORI:
		return ExecOutput{Value: in.RS | in.In.ZeroImm()}, nil
	case OpXORI:
		return ExecOutput{Value: in.RS ^ in.In.ZeroImm()}, nil
	case OpLUI:
		return ExecOutput{Value: signExt32(uint64(in.In.Imm16()) << 16)}, nil
	case OpCACHE, OpSYNC:
		return ExecOutput{}, nil

	// ---- Loads (L-class): two invocations ------------------------------
	case OpLB, OpLBU, OpLH, OpLHU, OpLW, OpLWU, OpLL:
		if !in.HaveDC {
			return ExecOutput{Value: in.RS + in.In.SignImm()}, nil
		}
		return ExecOutput{Value: loadValue(v, in.Addr, in.DC)}, nil
	case OpLDL, OpLDR, OpLWL, OpLWR, OpLLD, OpLDC1, OpLDC2, OpLD, OpLWC1, OpLWC2:
		return ExecOutput{}, ErrUnimplementedInstruction

	// ---- Stores (S-class): address only, value comes from rf.rt -------
	case OpSB, OpSH, OpSW, OpSC:
		return ExecOutput{Value: in.RS + in.In.SignImm()}, nil
	case OpSDL, OpSDR, OpSWL, OpSWR, OpSCD, OpSDC1, OpSDC2, OpSD, OpSWC1, OpSWC2:
		return ExecOutput{}, ErrUnimplementedInstruction

	// ---- Branches (B-class) --------------------------------------------
	case OpBEQ:
		return ExecOutput{Branch: in.RS == in.RT}, nil
	case OpBNE:
		return ExecOutput{Branch: in.RS != in.RT}, nil
	case OpBLEZ:
		return ExecOutput{Branch: int64(in.RS) <= 0}, nil
	case OpBGTZ:
		return ExecOutput{Branch: int64(in.RS) > 0}, nil
	case OpBLTZ:
		return ExecOutput{Branch: int64(in.RS) < 0}, nil
	case OpBGEZ:
		return ExecOutput{Branch: int64(in.RS) >= 0}, nil
	case OpBLTZAL:
		return ExecOutput{Branch: int64(in.RS) < 0, Link: true}, nil
	case OpBGEZAL:
		return ExecOutput{Branch: int64(in.RS) >= 0, Link: true}, nil
	case OpBEQL, OpBNEL, OpBLEZL, OpBGTZL, OpBLTZL, OpBGEZL, OpBLTZALL, OpBGEZALL,
		OpBC0F, OpBC0T, OpBC0FL, OpBC0TL:
		// "Likely" and coprocessor-condition branches are simplified to a
		// no-op: decode succeeds, the branch is never taken.
		return ExecOutput{}, nil

	// ---- Jumps (J-class) ------------------------------------------------
	case OpJ:
		return ExecOutput{Value: jumpTarget(in.PC, in.In.Target())}, nil
	case OpJAL:
		return ExecOutput{Value: jumpTarget(in.PC, in.In.Target()), Link: true}, nil
	case OpJR:
		return ExecOutput{Value: in.RS}, nil
	case OpJALR:
		return ExecOutput{Value: in.RS, Link: true}, nil

	// ---- Register (R-class) arithmetic ----------------------------------
	case OpADD, OpADDU:
		return ExecOutput{Value: signExt32(lo32(in.RS) + lo32(in.RT))}, nil
	case OpSUB, OpSUBU:
		return ExecOutput{Value: signExt32(lo32(in.RS) - lo32(in.RT))}, nil
	case OpDADD, OpDADDU:
		return ExecOutput{Value: in.RS + in.RT}, nil
	case OpDSUB, OpDSUBU:
		return ExecOutput{Value: in.RS - in.RT}, nil
	case OpAND:
		return ExecOutput{Value: in.RS & in.RT}, nil
	case OpOR:
		return ExecOutput{Value: in.RS | in.RT}, nil
	case OpXOR:
		return ExecOutput{Value: in.RS ^ in.RT}, nil
	case OpNOR:
		return ExecOutput{Value: ^(in.RS | in.RT)}, nil
	case OpSLT:
		if int64(in.RS) < int64(in.RT) {
			return ExecOutput{Value: 1}, nil
		}
		return ExecOutput{Value: 0}, nil
	case OpSLTU:
		if in.RS < in.RT {
			return ExecOutput{Value: 1}, nil
		}
		return ExecOutput{Value: 0}, nil

	// ---- Shifts -----------------------------------------------------------
	case OpSLL:
		return ExecOutput{Value: signExt32(lo32(in.RT) << in.In.SA())}, nil
	case OpSRL:
		return ExecOutput{Value: signExt32(lo32(in.RT) >> in.In.SA())}, nil
	case OpSRA:
		return ExecOutput{Value: uint64(int64(int32(lo32(in.RT))) >> in.In.SA())}, nil
	case OpSLLV:
		return ExecOutput{Value: signExt32(lo32(in.RT) << (in.RS & 0x1f))}, nil
	case OpSRLV:
		return ExecOutput{Value: signExt32(lo32(in.RT) >> (in.RS & 0x1f))}, nil
	case OpSRAV:
		return ExecOutput{Value: uint64(int64(int32(lo32(in.RT))) >> (in.RS & 0x1f))}, nil
	case OpDSLL:
		return ExecOutput{Value: in.RT << in.In.SA()}, nil
	case OpDSRL:
		return ExecOutput{Value: in.RT >> in.In.SA()}, nil
	case OpDSRA:
		return ExecOutput{Value: uint64(int64(in.RT) >> in.In.SA())}, nil
	case OpDSLL32:
		return ExecOutput{Value: in.RT << (uint(in.In.SA()) + 32)}, nil
	case OpDSRL32:
		return ExecOutput{Value: in.RT >> (uint(in.In.SA()) + 32)}, nil
	case OpDSRA32:
		return ExecOutput{Value: uint64(int64(in.RT) >> (uint(in.In.SA()) + 32))}, nil
	case OpDSLLV:
		return ExecOutput{Value: in.RT << (in.RS & 0x3f)}, nil
	case OpDSRLV:
		return ExecOutput{Value: in.RT >> (in.RS & 0x3f)}, nil
	case OpDSRAV:
		return ExecOutput{Value: uint64(int64(in.RT) >> (in.RS & 0x3f))}, nil

	// ---- SYSCALL: the test-harness signal, handled by the pipeline ------
	case OpSYSCALL:
		return ExecOutput{}, nil

	// ---- CP0 register moves (C-class) -----------------------------------
	case OpMFC0, OpDMFC0:
		return ExecOutput{Value: in.RS}, nil
	case OpMTC0, OpDMTC0:
		return ExecOutput{Value: in.RT}, nil

	// ---- Everything else is decoded but out of scope ---------------------
	default:
		return ExecOutput{}, ErrUnimplementedInstruction
	}
}

func lo32(v uint64) uint64 { return uint64(uint32(v)) }

func signExt32(v uint64) uint64 { return uint64(int64(int32(uint32(v)))) }

func jumpTarget(pc uint64, target uint32) uint64 {
	return (pc & 0xfffffffff0000000) | (uint64(target) << 2)
}

// loadValue extracts and extends the appropriate byte/halfword/word from a
// big-endian 32-bit word returned by the memory controller.
func loadValue(v Variant, addr, word uint64) uint64 {
	switch v {
	case OpLB:
		b := byteAt(word, addr)
		return uint64(int64(int8(b)))
	case OpLBU:
		return uint64(byteAt(word, addr))
	case OpLH:
		h := halfAt(word, addr)
		return uint64(int64(int16(h)))
	case OpLHU:
		return uint64(halfAt(word, addr))
	case OpLW, OpLL:
		return uint64(int64(int32(uint32(word))))
	case OpLWU:
		return uint64(uint32(word))
	default:
		return word
	}
}

func byteAt(word, addr uint64) uint8 {
	shift := (3 - (addr & 3)) * 8
	return uint8(word >> shift)
}

func halfAt(word, addr uint64) uint16 {
	shift := (1 - ((addr & 3) / 2)) * 16
	return uint16(word >> shift)
}
