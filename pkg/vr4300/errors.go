package vr4300

import "errors"

// ErrReservedInstruction is returned when the decoder could not resolve a
// word to any known opcode variant.
var ErrReservedInstruction = errors.New("vr4300: reserved instruction")

// ErrUnimplementedInstruction is returned for a word that decodes cleanly
// to a known MIPS-III opcode outside this core's implemented subset (FPU,
// most CP0, multiply/divide, doubleword memory ops, LWL/LWR/SWL/SWR, TLB).
var ErrUnimplementedInstruction = errors.New("vr4300: unimplemented instruction")
