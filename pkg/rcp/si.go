package rcp

import (
	"fmt"

	"github.com/n64core/n64core/pkg/mc"
)

var _ mc.RegisterBank = (*SI)(nil)

// SI register offsets, relative to the Serial Interface's own range. The
// PIF RAM/ROM backing store lives behind mc's own PIF_ROM/PIF_RAM ranges;
// this bank is only the Serial Interface's DMA-control cells.
const (
	siDRAMAddr     = 0x00
	siPIFAddrRd64B = 0x04
	siPIFAddrWr64B = 0x10
	siStatus       = 0x18
)

// SI models the Serial Interface's register bank, which drives PIF DMA.
type SI struct {
	dramAddr, pifAddrRd64B, pifAddrWr64B, status uint32
}

// ReadReg implements mc.RegisterBank.
func (s *SI) ReadReg(offset uint32) (uint32, error) {
	switch offset {
	case siDRAMAddr:
		return s.dramAddr, nil
	case siPIFAddrRd64B:
		return s.pifAddrRd64B, nil
	case siPIFAddrWr64B:
		return s.pifAddrWr64B, nil
	case siStatus:
		return s.status, nil
	default:
		return 0, fmt.Errorf("%w: si offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
}

// WriteReg implements mc.RegisterBank.
func (s *SI) WriteReg(offset uint32, val uint32) error {
	switch offset {
	case siDRAMAddr:
		s.dramAddr = val
	case siPIFAddrRd64B:
		s.pifAddrRd64B = val
	case siPIFAddrWr64B:
		s.pifAddrWr64B = val
	case siStatus:
		s.status = val
	default:
		return fmt.Errorf("%w: si offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
	return nil
}
