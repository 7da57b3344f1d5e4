package rcp

import "github.com/n64core/n64core/pkg/mc"

var _ mc.RegisterBank = (*RDP)(nil)

// RDP models the Reality Display Processor's command and span register
// windows. Neither window has named cells in this core's scope (no
// rasterization is modeled), but the physical-address table marks both
// ranges readable and writable, so unlike the genuinely off-limits ranges
// this bank accepts any offset rather than failing — reads return
// whatever was last written there, zero otherwise.
type RDP struct {
	cells map[uint32]uint32
}

// NewRDP returns an empty RDP register bank.
func NewRDP() *RDP { return &RDP{cells: make(map[uint32]uint32)} }

// ReadReg implements mc.RegisterBank.
func (r *RDP) ReadReg(offset uint32) (uint32, error) {
	return r.cells[offset], nil
}

// WriteReg implements mc.RegisterBank.
func (r *RDP) WriteReg(offset uint32, val uint32) error {
	r.cells[offset] = val
	return nil
}
