package vr4300

import "testing"

// TestDecodeTotality checks that every primary opcode, and every leaf of
// the SPECIAL/REGIMM/COP0 sub-tables, decodes to something other than a
// crash. Reserved slots must come back as the RESERVED sentinel, not panic.
func TestDecodeTotality(t *testing.T) {
	check := func(word uint32) {
		instr := Decode(word)
		if instr.Word() != word {
			t.Fatalf("decode(%#08x): Word() = %#08x", word, instr.Word())
		}
		_ = instr.Mnemonic()
		_ = instr.String()
	}

	// Every primary opcode against every rs and rt value: this is what
	// REGIMM's rt-indexed and COP0's rs-indexed sub-tables redirect on.
	for op := 0; op < 64; op++ {
		for rs := 0; rs < 32; rs++ {
			for rt := 0; rt < 32; rt++ {
				check(uint32(op)<<26 | uint32(rs)<<21 | uint32(rt)<<16)
			}
		}
	}
	// Every primary opcode against every funct value: SPECIAL and COP0's
	// CO sub-table redirect on this field.
	for op := 0; op < 64; op++ {
		for funct := 0; funct < 64; funct++ {
			check(uint32(op)<<26 | 0o20<<21 | uint32(funct))
		}
	}
}

func TestDecodeReservedIsZeroValue(t *testing.T) {
	// Opcode 0o23 has no primary-table entry.
	instr := Decode(0o23 << 26)
	if instr.Variant() != RESERVED {
		t.Fatalf("expected RESERVED, got variant %d", instr.Variant())
	}
}

func TestDecodeFields(t *testing.T) {
	// ADDIU r2, r1, -1: opcode 0o11, rs=1, rt=2, imm=0xffff.
	word := uint32(0o11)<<26 | 1<<21 | 2<<16 | 0xffff
	instr := Decode(word)
	if instr.Opcode() != 0o11 {
		t.Errorf("Opcode() = %#o, want %#o", instr.Opcode(), 0o11)
	}
	if instr.RS() != 1 {
		t.Errorf("RS() = %d, want 1", instr.RS())
	}
	if instr.RT() != 2 {
		t.Errorf("RT() = %d, want 2", instr.RT())
	}
	if instr.SignImm() != 0xffffffffffffffff {
		t.Errorf("SignImm() = %#x, want -1", instr.SignImm())
	}
	if instr.ZeroImm() != 0xffff {
		t.Errorf("ZeroImm() = %#x, want 0xffff", instr.ZeroImm())
	}
	if instr.Variant() != OpADDIU || instr.Class() != ClassI {
		t.Errorf("variant/class = %d/%s, want OpADDIU/I", instr.Variant(), instr.Class())
	}
}

func TestDecodeSpecialAndRegimmAndCop0(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		want Variant
	}{
		{"add", uint32(0)<<26 | 0o40, OpADD},
		{"sll", uint32(0)<<26 | 0o00, OpSLL},
		{"jr", uint32(0)<<26 | 0o10, OpJR},
		{"bltz", uint32(0o01)<<26 | 0<<16, OpBLTZ},
		{"bgezal", uint32(0o01)<<26 | 0o21<<16, OpBGEZAL},
		{"mfc0", uint32(0o20)<<26 | 0o00<<21, OpMFC0},
		{"mtc0", uint32(0o20)<<26 | 0o04<<21, OpMTC0},
		{"bc0f", uint32(0o20)<<26 | 0o10<<21 | 0<<16, OpBC0F},
		{"bc0tl", uint32(0o20)<<26 | 0o10<<21 | 3<<16, OpBC0TL},
		{"tlbwi", uint32(0o20)<<26 | 0o20<<21 | 0o02, OpTLBWI},
		{"eret", uint32(0o20)<<26 | 0o20<<21 | 0o30, OpERET},
		{"cop1 unimplemented", uint32(0o21) << 26, OpCOP1},
		{"cop2 unimplemented", uint32(0o22) << 26, OpCOP2},
	}
	for _, tc := range cases {
		got := Decode(tc.word).Variant()
		if got != tc.want {
			t.Errorf("%s: decode(%#08x) = variant %d, want %d", tc.name, tc.word, got, tc.want)
		}
	}
}

func TestGPRZeroInvariant(t *testing.T) {
	var c CPU
	c.SetGPR(0, 0xdeadbeef)
	if c.GPR(0) != 0 {
		t.Fatalf("GPR(0) = %#x, want 0 after write", c.GPR(0))
	}
	for i := uint8(1); i < 32; i++ {
		c.SetGPR(i, uint64(i)*7)
		if c.GPR(i) != uint64(i)*7 {
			t.Errorf("GPR(%d) = %#x, want %#x", i, c.GPR(i), uint64(i)*7)
		}
	}
}
