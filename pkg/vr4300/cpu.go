package vr4300

// MemoryController is everything the pipeline needs from the system's
// address space: a big-endian, byte-addressable, 32-bit-word interface.
// pkg/mc's Controller satisfies this; tests can satisfy it with a bare
// backing array.
type MemoryController interface {
	Read(addr uint32) (uint32, error)
	Write(addr uint32, v uint32) error
}

// TestResult is the record SYSCALL emits onto a CPU's Results channel when
// one is attached. sa carries the raw shift-amount field of the SYSCALL
// encoding; only a SYSCALL with a nonzero sa emits a record, and Pass is
// true when the rt field is 16.
type TestResult struct {
	RS, RD uint64
	SA     uint8
	Pass   bool
}

// CPU is the VR4300 integer pipeline: the general-purpose and CP0
// register files, HI/LO/LL, the program counter, and the four pipeline
// latches (ic/rf/ex/dc) plus the single ds_pc delay slot.
type CPU struct {
	gpr [32]uint64
	cp0 CP0
	hi  uint64
	lo  uint64
	ll  bool
	pc  uint64

	ic struct {
		op Instruction
	}
	rf struct {
		rs, rt uint64
	}
	ex struct {
		ol   uint64
		addr uint64
		br   bool
		wlr  bool
	}
	dc struct {
		word uint64
	}
	dsPC uint64 // 0 means no delay-slot jump pending

	// Results receives a TestResult for every executed SYSCALL whose sa
	// field is nonzero, when non-nil. It is never read by the pipeline
	// itself.
	Results chan<- TestResult
}

// NewCPU returns a CPU with its program counter at the VR4300's hardware
// reset vector, inside the unmapped PIF-ROM window.
func NewCPU() *CPU {
	cpu := &CPU{pc: 0xffffffffbfc00000}
	return cpu
}

// PC returns the current program counter.
func (c *CPU) PC() uint64 { return c.pc }

// SetPC overrides the program counter; used by tests and by the driver
// after loading a cartridge whose entry point differs from the reset
// vector.
func (c *CPU) SetPC(pc uint64) { c.pc = pc }

// GPR returns general-purpose register i. GPR 0 always reads zero.
func (c *CPU) GPR(i uint8) uint64 { return c.gpr[i&0x1f] }

// SetGPR writes general-purpose register i. Writes to register 0 are
// silently discarded, mirroring the hardware wiring.
func (c *CPU) SetGPR(i uint8, v uint64) {
	if i&0x1f == 0 {
		return
	}
	c.gpr[i&0x1f] = v
}

// CP0 returns the coprocessor-0 register file.
func (c *CPU) CP0() *CP0 { return &c.cp0 }

// variants that decode cleanly, execute with no error, but write back
// nothing: SYSCALL's effect is the side channel, SYNC and CACHE are
// modeled as true no-ops since this core has no cache or multiprocessor
// ordering to model.
func writesBack(v Variant) bool {
	switch v {
	case OpSYSCALL, OpSYNC, OpCACHE:
		return false
	default:
		return true
	}
}

// Step executes exactly one instruction through IC, RF, EX, DC and WB, in
// that order, advancing the pipeline by one instruction. It returns the
// first fatal error encountered, per the core's no-recovery error model.
func (c *CPU) Step(mc MemoryController) error {
	defer func() { c.gpr[0] = 0 }()

	// IC: fetch at the current PC (which already accounts for any delay
	// slot: the previous step's advance, below, put it there) and decode.
	// Then resolve the PC for the *next* step: a pending delay-slot jump
	// set by an earlier step (a taken branch in EX, a jump in WB) overrides
	// the normal +4 advance. This
	// ordering is what makes the instruction right after a taken branch
	// still execute: the override lands one step later than the branch
	// itself, after its own delay slot has already been fetched.
	word, err := mc.Read(uint32(c.pc))
	if err != nil {
		return err
	}
	instr := Decode(word)
	c.ic.op = instr
	if c.dsPC != 0 {
		c.pc = c.dsPC
		c.dsPC = 0
	} else {
		c.pc += 4
	}

	// RF: fetch both source operands. Class C instructions fetch the
	// addressed CP0 register into rs (read side) and the GPR into rt
	// (write side), regardless of which direction the variant moves data.
	c.rf.rs = c.gpr[instr.RS()]
	c.rf.rt = c.gpr[instr.RT()]
	if instr.Class() == ClassC {
		c.rf.rs = uint64(c.cp0.Read(instr.RD()))
	}

	// EX: the test-harness side channel fires for a SYSCALL with a nonzero
	// sa field, and only when a receiver is attached to it.
	if instr.Variant() == OpSYSCALL && instr.SA() != 0 && c.Results != nil {
		c.Results <- TestResult{RS: c.gpr[instr.RS()], RD: c.gpr[instr.RD()], SA: instr.SA(), Pass: instr.RT() == 16}
	}
	out, err := Exec(ExecInput{PC: c.pc, RS: c.rf.rs, RT: c.rf.rt, In: instr})
	if err != nil {
		return err
	}
	c.ex.ol = out.Value
	c.ex.addr = out.Value
	c.ex.br = out.Branch
	c.ex.wlr = out.Link
	if instr.Class() == ClassB && out.Branch {
		c.dsPC = c.pc + uint64(instr.Offset())*4
	}

	// DC: loads alone re-invoke the descriptor, now with the aligned word
	// the controller returned for the effective address, to pick out and
	// sign/zero-extend the final value.
	if instr.Class() == ClassL {
		loaded, err := mc.Read(uint32(c.ex.addr) &^ 3)
		if err != nil {
			return err
		}
		c.dc.word = uint64(loaded)
		out2, err := Exec(ExecInput{
			PC: c.pc, RS: c.rf.rs, RT: c.rf.rt,
			Addr: c.ex.addr, DC: c.dc.word, HaveDC: true, In: instr,
		})
		if err != nil {
			return err
		}
		c.ex.ol = out2.Value
		if instr.Variant() == OpLL {
			c.ll = true
		}
	}

	// WB: the only stage allowed to mutate memory or cross-register state.
	switch instr.Class() {
	case ClassS:
		if instr.Variant() == OpSC {
			if c.ll {
				if err := mc.Write(uint32(c.ex.addr), uint32(c.rf.rt)); err != nil {
					return err
				}
				c.SetGPR(instr.RT(), 1)
			} else {
				c.SetGPR(instr.RT(), 0)
			}
			c.ll = false
			break
		}
		if err := mc.Write(uint32(c.ex.addr), uint32(c.rf.rt)); err != nil {
			return err
		}
	case ClassC:
		switch instr.Variant() {
		case OpMFC0, OpDMFC0:
			c.SetGPR(instr.RT(), c.ex.ol)
		case OpMTC0, OpDMTC0:
			c.cp0.Write(instr.RD(), uint32(c.ex.ol))
		}
	case ClassJ:
		if c.ex.wlr {
			dst := uint8(31)
			if instr.Variant() == OpJALR {
				dst = instr.RD()
			}
			c.SetGPR(dst, c.pc+4)
		}
		c.dsPC = c.ex.ol
	case ClassB:
		if c.ex.wlr {
			c.SetGPR(31, c.pc+4)
		}
	case ClassI, ClassL:
		if writesBack(instr.Variant()) {
			c.SetGPR(instr.RT(), c.ex.ol)
		}
	case ClassR:
		if writesBack(instr.Variant()) {
			c.SetGPR(instr.RD(), c.ex.ol)
		}
	}

	return nil
}
