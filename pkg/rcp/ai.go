package rcp

import (
	"fmt"

	"github.com/n64core/n64core/pkg/mc"
)

var _ mc.RegisterBank = (*AI)(nil)

// AI register offsets, relative to the Audio Interface's own range.
const (
	aiDRAMAddr = 0x00
	aiLen      = 0x04
	aiControl  = 0x08
	aiStatus   = 0x0c
	aiDACRate  = 0x10
	aiBitRate  = 0x14
)

// AI models the Audio Interface's register bank.
type AI struct {
	dramAddr, length, control, status, dacRate, bitRate uint32
}

// ReadReg implements mc.RegisterBank.
func (a *AI) ReadReg(offset uint32) (uint32, error) {
	switch offset {
	case aiDRAMAddr:
		return a.dramAddr, nil
	case aiLen:
		return a.length, nil
	case aiControl:
		return a.control, nil
	case aiStatus:
		return a.status, nil
	case aiDACRate:
		return a.dacRate, nil
	case aiBitRate:
		return a.bitRate, nil
	default:
		return 0, fmt.Errorf("%w: ai offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
}

// WriteReg implements mc.RegisterBank.
func (a *AI) WriteReg(offset uint32, val uint32) error {
	switch offset {
	case aiDRAMAddr:
		a.dramAddr = val
	case aiLen:
		a.length = val
	case aiControl:
		a.control = val
	case aiStatus:
		a.status = val
	case aiDACRate:
		a.dacRate = val
	case aiBitRate:
		a.bitRate = val
	default:
		return fmt.Errorf("%w: ai offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
	return nil
}
