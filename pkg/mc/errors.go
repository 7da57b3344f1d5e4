// Package mc implements the Nintendo 64 memory controller: KSEG0/KSEG1
// virtual-to-physical translation and the total physical-address dispatch
// table binding DRAM, cartridge ROM, PIF ROM/RAM, RSP DMEM/IMEM and the
// peripheral register banks into one big-endian, byte-addressable space.
package mc

import (
	"errors"
	"fmt"
)

// ErrIllegalVirtualAddress is returned when a virtual address falls
// outside the KSEG0/KSEG1 windows this controller translates.
var ErrIllegalVirtualAddress = errors.New("mc: illegal virtual address")

// ErrIllegalPhysicalAddress is returned when a translated physical address
// falls outside every range in the dispatch table, or inside a range but
// beyond its backing store's actual size.
var ErrIllegalPhysicalAddress = errors.New("mc: illegal physical address")

// ErrForbiddenWrite is returned when a write targets a read-only range
// (cartridge ROM domains, PIF ROM).
var ErrForbiddenWrite = errors.New("mc: forbidden write")

// ErrForbiddenAccess is returned when an access targets a range the
// controller declares off-limits entirely (RDRAM registers, unused,
// reserved).
var ErrForbiddenAccess = errors.New("mc: forbidden access")

// ErrUnknownRegisterOffset is returned when a register bank doesn't
// recognize an offset within its own range.
var ErrUnknownRegisterOffset = errors.New("mc: unknown register offset")

func wrapf(base error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{base}, args...)...)
}
