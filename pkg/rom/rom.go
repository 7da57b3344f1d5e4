// Package rom parses the fixed 64-byte Nintendo 64 cartridge ROM header:
// read-only metadata describing a cartridge image, independent of the
// pipeline and memory controller that execute it.
package rom

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderSize is the size in bytes of the fixed N64 ROM header.
const HeaderSize = 0x40

// Header is the parsed form of a cartridge's leading 64 bytes.
type Header struct {
	PIBSDDom1Config uint32
	ClockRate       uint32
	BootAddress     uint32
	Release         uint32
	CRC1            uint32
	CRC2            uint32
	Name            string
	ManufacturerID  byte
	CartridgeID     uint16
	CountryCode     byte
	Version         byte
}

// ParseHeader reads a Header from the first HeaderSize bytes of a
// cartridge image. It does not validate the PI_BSD_DOM1 magic or either
// CRC; it only unpacks the fixed fields.
func ParseHeader(cart []byte) (Header, error) {
	if len(cart) < HeaderSize {
		return Header{}, fmt.Errorf("rom: image is %d bytes, shorter than a %d-byte header", len(cart), HeaderSize)
	}
	be := binary.BigEndian
	h := Header{
		PIBSDDom1Config: be.Uint32(cart[0x00:0x04]),
		ClockRate:       be.Uint32(cart[0x04:0x08]),
		BootAddress:     be.Uint32(cart[0x08:0x0c]),
		Release:         be.Uint32(cart[0x0c:0x10]),
		CRC1:            be.Uint32(cart[0x10:0x14]),
		CRC2:            be.Uint32(cart[0x14:0x18]),
		Name:            strings.TrimRight(string(cart[0x20:0x34]), " \x00"),
		ManufacturerID:  cart[0x3b],
		CartridgeID:     be.Uint16(cart[0x3c:0x3e]),
		CountryCode:     cart[0x3e],
		Version:         cart[0x3f],
	}
	return h, nil
}
