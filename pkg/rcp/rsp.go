package rcp

import (
	"fmt"

	"github.com/n64core/n64core/pkg/mc"
)

var _ mc.RegisterBank = (*RSP)(nil)

// RSP register offsets, relative to the Reality Signal Processor's control
// range. semaphore and pc extend past the narrower window original_source
// carved out for them; this core follows the full cell list instead (see
// DESIGN.md).
const (
	rspMemAddr   = 0x00
	rspDRAMAddr  = 0x04
	rspRdLen     = 0x08
	rspWrLen     = 0x0c
	rspStatus    = 0x10
	rspDMAFull   = 0x14
	rspDMABusy   = 0x18
	rspSemaphore = 0x1c
	rspPC        = 0x20
)

// RSP status bits, per the hardware's own conventions.
const (
	StatusHalt      = 1 << 0
	StatusBroke     = 1 << 1
	StatusDMABusy   = 1 << 2
	StatusDMAFull   = 1 << 3
	StatusIOFull    = 1 << 4
	StatusSStep     = 1 << 5
	StatusIntrBreak = 1 << 6
)

// RSP models the Reality Signal Processor's control register bank. DMEM
// and IMEM are bulk memory handled directly by the memory controller, not
// by this bank.
type RSP struct {
	memAddr, dramAddr, rdLen, wrLen uint32
	status, dmaFull, dmaBusy        uint32
	semaphore, pc                   uint32
}

// NewRSP returns an RSP control bank with status initialized the way real
// hardware comes up: halted, awaiting a signal from the CPU.
func NewRSP() *RSP {
	return &RSP{status: StatusHalt}
}

// ReadReg implements mc.RegisterBank.
func (r *RSP) ReadReg(offset uint32) (uint32, error) {
	switch offset {
	case rspMemAddr:
		return r.memAddr, nil
	case rspDRAMAddr:
		return r.dramAddr, nil
	case rspRdLen:
		return r.rdLen, nil
	case rspWrLen:
		return r.wrLen, nil
	case rspStatus:
		return r.status, nil
	case rspDMAFull:
		return r.dmaFull, nil
	case rspDMABusy:
		return r.dmaBusy, nil
	case rspSemaphore:
		return r.semaphore, nil
	case rspPC:
		return r.pc, nil
	default:
		return 0, fmt.Errorf("%w: rsp offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
}

// WriteReg implements mc.RegisterBank.
func (r *RSP) WriteReg(offset uint32, val uint32) error {
	switch offset {
	case rspMemAddr:
		r.memAddr = val
	case rspDRAMAddr:
		r.dramAddr = val
	case rspRdLen:
		r.rdLen = val
	case rspWrLen:
		r.wrLen = val
	case rspStatus:
		r.status = val
	case rspDMAFull:
		r.dmaFull = val
	case rspDMABusy:
		r.dmaBusy = val
	case rspSemaphore:
		r.semaphore = val
	case rspPC:
		r.pc = val
	default:
		return fmt.Errorf("%w: rsp offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
	return nil
}
