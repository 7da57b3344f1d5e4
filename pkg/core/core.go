// Package core wires the VR4300 pipeline, the memory controller and the
// peripheral register banks into the single driver surface a CLI or test
// harness uses: NewCore, Step, Read and Write.
package core

import (
	"github.com/n64core/n64core/pkg/mc"
	"github.com/n64core/n64core/pkg/rcp"
	"github.com/n64core/n64core/pkg/rom"
	"github.com/n64core/n64core/pkg/vr4300"
)

// Core is a complete, runnable CPU-plus-memory-controller instance bound
// to a cartridge image and a PIF boot ROM.
type Core struct {
	CPU    *vr4300.CPU
	MC     *mc.Controller
	Header rom.Header
}

// NewCore parses the cartridge's header and builds a Core ready to Step.
// The program counter starts at the VR4300 hardware reset vector; callers
// that want to skip PIF boot can call CPU.SetPC(header.BootAddress) (or
// any KSEG0/KSEG1 address) before the first Step.
func NewCore(cart, pifROM []byte) (*Core, error) {
	header, err := rom.ParseHeader(cart)
	if err != nil {
		return nil, err
	}
	p := mc.Peripherals{
		VI:  &rcp.VI{},
		AI:  &rcp.AI{},
		MI:  &rcp.MI{},
		PI:  &rcp.PI{},
		RI:  &rcp.RI{},
		SI:  &rcp.SI{},
		RSP: rcp.NewRSP(),
		RDP: rcp.NewRDP(),
	}
	return &Core{
		CPU:    vr4300.NewCPU(),
		MC:     mc.NewController(cart, pifROM, p),
		Header: header,
	}, nil
}

// Step advances the pipeline by exactly one instruction.
func (c *Core) Step() error { return c.CPU.Step(c.MC) }

// Read performs a big-endian 32-bit read through the memory controller.
func (c *Core) Read(addr uint32) (uint32, error) { return c.MC.Read(addr) }

// Write performs a big-endian 32-bit write through the memory controller.
func (c *Core) Write(addr uint32, v uint32) error { return c.MC.Write(addr, v) }

// AttachResults wires a channel to receive a TestResult for every SYSCALL
// with a nonzero sa field that the pipeline executes.
func (c *Core) AttachResults(ch chan<- vr4300.TestResult) { c.CPU.Results = ch }
