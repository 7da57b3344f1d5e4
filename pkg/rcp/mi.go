package rcp

import (
	"fmt"

	"github.com/n64core/n64core/pkg/mc"
)

var _ mc.RegisterBank = (*MI)(nil)

// MI register offsets, relative to the MIPS Interface's own range.
const (
	miInitMode = 0x00
	miVersion  = 0x04
	miIntr     = 0x08
	miIntrMask = 0x0c
)

// MI models the MIPS Interface's register bank.
type MI struct {
	initMode, version, intr, intrMask uint32
}

// ReadReg implements mc.RegisterBank.
func (m *MI) ReadReg(offset uint32) (uint32, error) {
	switch offset {
	case miInitMode:
		return m.initMode, nil
	case miVersion:
		return m.version, nil
	case miIntr:
		return m.intr, nil
	case miIntrMask:
		return m.intrMask, nil
	default:
		return 0, fmt.Errorf("%w: mi offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
}

// WriteReg implements mc.RegisterBank.
func (m *MI) WriteReg(offset uint32, val uint32) error {
	switch offset {
	case miInitMode:
		m.initMode = val
	case miVersion:
		m.version = val
	case miIntr:
		m.intr = val
	case miIntrMask:
		m.intrMask = val
	default:
		return fmt.Errorf("%w: mi offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
	return nil
}
