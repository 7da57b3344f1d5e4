package rcp

import (
	"fmt"

	"github.com/n64core/n64core/pkg/mc"
)

var _ mc.RegisterBank = (*RI)(nil)

// RI register offsets, relative to the RDRAM Interface's own range.
const (
	riMode        = 0x00
	riConfig      = 0x04
	riCurrentLoad = 0x08
	riSelect      = 0x0c
	riRefresh     = 0x10
	riLatency     = 0x14
	riRError      = 0x18
	riWError      = 0x1c
)

// RI models the RDRAM Interface's register bank.
type RI struct {
	mode, config, currentLoad, selectReg uint32
	refresh, latency, rerror, werror     uint32
}

// ReadReg implements mc.RegisterBank.
func (r *RI) ReadReg(offset uint32) (uint32, error) {
	switch offset {
	case riMode:
		return r.mode, nil
	case riConfig:
		return r.config, nil
	case riCurrentLoad:
		return r.currentLoad, nil
	case riSelect:
		return r.selectReg, nil
	case riRefresh:
		return r.refresh, nil
	case riLatency:
		return r.latency, nil
	case riRError:
		return r.rerror, nil
	case riWError:
		return r.werror, nil
	default:
		return 0, fmt.Errorf("%w: ri offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
}

// WriteReg implements mc.RegisterBank.
func (r *RI) WriteReg(offset uint32, val uint32) error {
	switch offset {
	case riMode:
		r.mode = val
	case riConfig:
		r.config = val
	case riCurrentLoad:
		r.currentLoad = val
	case riSelect:
		r.selectReg = val
	case riRefresh:
		r.refresh = val
	case riLatency:
		r.latency = val
	case riRError:
		r.rerror = val
	case riWError:
		r.werror = val
	default:
		return fmt.Errorf("%w: ri offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
	return nil
}
