package rcp

import (
	"fmt"

	"github.com/n64core/n64core/pkg/mc"
)

var _ mc.RegisterBank = (*PI)(nil)

// PI register offsets, relative to the Peripheral Interface's own range.
const (
	piDRAMAddr    = 0x00
	piCartAddr    = 0x04
	piRdLen       = 0x08
	piWrLen       = 0x0c
	piStatus      = 0x10
	piBSDDom1Lat  = 0x14
	piBSDDom1Pwd  = 0x18
	piBSDDom1Pgs  = 0x1c
	piBSDDom1Rls  = 0x20
	piBSDDom2Lat  = 0x24
	piBSDDom2Pwd  = 0x28
	piBSDDom2Pgs  = 0x2c
	piBSDDom2Rls  = 0x30
)

// PI models the Peripheral Interface's register bank: DMA control between
// the cartridge and RDRAM, plus the BSD-domain timing straps.
type PI struct {
	dramAddr, cartAddr, rdLen, wrLen, status              uint32
	dom1Lat, dom1Pwd, dom1Pgs, dom1Rls                    uint32
	dom2Lat, dom2Pwd, dom2Pgs, dom2Rls                    uint32
}

// ReadReg implements mc.RegisterBank.
func (p *PI) ReadReg(offset uint32) (uint32, error) {
	switch offset {
	case piDRAMAddr:
		return p.dramAddr, nil
	case piCartAddr:
		return p.cartAddr, nil
	case piRdLen:
		return p.rdLen, nil
	case piWrLen:
		return p.wrLen, nil
	case piStatus:
		return p.status, nil
	case piBSDDom1Lat:
		return p.dom1Lat, nil
	case piBSDDom1Pwd:
		return p.dom1Pwd, nil
	case piBSDDom1Pgs:
		return p.dom1Pgs, nil
	case piBSDDom1Rls:
		return p.dom1Rls, nil
	case piBSDDom2Lat:
		return p.dom2Lat, nil
	case piBSDDom2Pwd:
		return p.dom2Pwd, nil
	case piBSDDom2Pgs:
		return p.dom2Pgs, nil
	case piBSDDom2Rls:
		return p.dom2Rls, nil
	default:
		return 0, fmt.Errorf("%w: pi offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
}

// WriteReg implements mc.RegisterBank.
func (p *PI) WriteReg(offset uint32, val uint32) error {
	switch offset {
	case piDRAMAddr:
		p.dramAddr = val
	case piCartAddr:
		p.cartAddr = val
	case piRdLen:
		p.rdLen = val
	case piWrLen:
		p.wrLen = val
	case piStatus:
		p.status = val
	case piBSDDom1Lat:
		p.dom1Lat = val
	case piBSDDom1Pwd:
		p.dom1Pwd = val
	case piBSDDom1Pgs:
		p.dom1Pgs = val
	case piBSDDom1Rls:
		p.dom1Rls = val
	case piBSDDom2Lat:
		p.dom2Lat = val
	case piBSDDom2Pwd:
		p.dom2Pwd = val
	case piBSDDom2Pgs:
		p.dom2Pgs = val
	case piBSDDom2Rls:
		p.dom2Rls = val
	default:
		return fmt.Errorf("%w: pi offset %#x", mc.ErrUnknownRegisterOffset, offset)
	}
	return nil
}
