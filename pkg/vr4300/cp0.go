package vr4300

// CP0 register indices, named the way the VR4300 hardware manual and
// original_source's cpu/mod.rs comment block enumerate them. Only a
// handful are ever touched by this core (MFC0/MTC0/DMFC0/DMTC0 move raw
// 32-bit values through whichever index the instruction names); the rest
// exist so CP0Index names read naturally in traces and tests.
const (
	CP0Index = iota
	CP0Random
	CP0EntryLo0
	CP0EntryLo1
	CP0Context
	CP0PageMask
	CP0Wired
	cp0Reserved7
	CP0BadVAddr
	CP0Count
	CP0EntryHi
	CP0Compare
	CP0Status
	CP0Cause
	CP0EPC
	CP0PRevID
	CP0Config
	CP0LLAddr
	CP0WatchLo
	CP0WatchHi
	CP0XContext
	cp0Reserved21
	cp0Reserved22
	cp0Reserved23
	cp0Reserved24
	cp0Reserved25
	CP0PErr
	CP0CacheErr
	CP0TagLo
	CP0TagHi
	CP0ErrorEPC
	cp0Reserved31
)

// CP0 is the 32-entry coprocessor-0 register file. Every register is
// modeled as a plain 32-bit cell; this core only ever moves raw values
// through MFC0/MTC0/DMFC0/DMTC0, so no register carries special behavior
// on read or write.
type CP0 struct {
	reg [32]uint32
}

// Read returns the raw value of CP0 register index.
func (c *CP0) Read(index uint8) uint32 { return c.reg[index&0x1f] }

// Write stores v into CP0 register index.
func (c *CP0) Write(index uint8, v uint32) { c.reg[index&0x1f] = v }
