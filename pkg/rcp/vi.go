// Package rcp implements the Reality Co-Processor peripheral register
// banks the memory controller dispatches to: Video, Audio, MIPS, Peripheral
// and Serial interfaces, plus the RSP control bank and a minimal RDP stub.
// Each bank is a flat struct of named uint32 cells behind an exact-offset
// switch, implementing mc.RegisterBank.
package rcp

import (
	"fmt"

	"github.com/n64core/n64core/pkg/mc"
)

var _ mc.RegisterBank = (*VI)(nil)

// VI register offsets, relative to the Video Interface's own range.
const (
	viStatus  = 0x00
	viOrigin  = 0x04
	viWidth   = 0x08
	viIntr    = 0x0c
	viCurrent = 0x10
	viBurst   = 0x14
	viVSync   = 0x18
	viHSync   = 0x1c
	viLeap    = 0x20
	viHStart  = 0x24
	viVStart  = 0x28
	viVBurst  = 0x2c
	viXScale  = 0x30
	viYScale  = 0x34
)

// VI models the Video Interface's register bank.
type VI struct {
	status, origin, width, intr                     uint32
	current, burst, vSync, hSync, leap               uint32
	hStart, vStart, vBurst, xScale, yScale            uint32
}

// ReadReg implements mc.RegisterBank.
func (v *VI) ReadReg(offset uint32) (uint32, error) {
	switch offset {
	case viStatus:
		return v.status, nil
	case viOrigin:
		return v.origin, nil
	case viWidth:
		return v.width, nil
	case viIntr:
		return v.intr, nil
	case viCurrent:
		return v.current, nil
	case viBurst:
		return v.burst, nil
	case viVSync:
		return v.vSync, nil
	case viHSync:
		return v.hSync, nil
	case viLeap:
		return v.leap, nil
	case viHStart:
		return v.hStart, nil
	case viVStart:
		return v.vStart, nil
	case viVBurst:
		return v.vBurst, nil
	case viXScale:
		return v.xScale, nil
	case viYScale:
		return v.yScale, nil
	default:
		return 0, fmt.Errorf("%w: vi offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
}

// WriteReg implements mc.RegisterBank.
func (v *VI) WriteReg(offset uint32, val uint32) error {
	switch offset {
	case viStatus:
		v.status = val
	case viOrigin:
		v.origin = val
	case viWidth:
		v.width = val
	case viIntr:
		v.intr = val
	case viCurrent:
		v.current = val
	case viBurst:
		v.burst = val
	case viVSync:
		v.vSync = val
	case viHSync:
		v.hSync = val
	case viLeap:
		v.leap = val
	case viHStart:
		v.hStart = val
	case viVStart:
		v.vStart = val
	case viVBurst:
		v.vBurst = val
	case viXScale:
		v.xScale = val
	case viYScale:
		v.yScale = val
	default:
		return fmt.Errorf("%w: vi offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
	return nil
}
