package rom

import "testing"

func TestParseHeader(t *testing.T) {
	cart := make([]byte, HeaderSize)
	cart[0x00], cart[0x01], cart[0x02], cart[0x03] = 0x80, 0x37, 0x12, 0x40 // PI_BSD_DOM1
	cart[0x08], cart[0x09], cart[0x0a], cart[0x0b] = 0x80, 0x00, 0x04, 0x00 // boot address
	copy(cart[0x20:0x34], "SUPER MARIO 64  ")
	cart[0x3e] = 'E'
	cart[0x3f] = 1

	h, err := ParseHeader(cart)
	if err != nil {
		t.Fatal(err)
	}
	if h.PIBSDDom1Config != 0x80371240 {
		t.Errorf("PIBSDDom1Config = %#x, want 0x80371240", h.PIBSDDom1Config)
	}
	if h.BootAddress != 0x80000400 {
		t.Errorf("BootAddress = %#x, want 0x80000400", h.BootAddress)
	}
	if h.Name != "SUPER MARIO 64" {
		t.Errorf("Name = %q, want %q (trailing blanks trimmed)", h.Name, "SUPER MARIO 64")
	}
	if h.CountryCode != 'E' {
		t.Errorf("CountryCode = %q, want 'E'", h.CountryCode)
	}
	if h.Version != 1 {
		t.Errorf("Version = %d, want 1", h.Version)
	}
}

func TestParseHeaderTooShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	if err == nil {
		t.Fatal("expected an error for a truncated header")
	}
}
