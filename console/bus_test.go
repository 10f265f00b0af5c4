package console

import (
	"testing"

	"github.com/gintendo-emu/gintendo/mappers"
	"github.com/gintendo-emu/gintendo/ppu"
)

func TestRAMMirroring(t *testing.T) {
	b := New(mappers.Dummy)
	b.Write(0x0010, 0x42)
	if got := b.Read(0x0810); got != 0x42 {
		t.Errorf("Read(0x0810) = %#02x, want 0x42 (mirrors 0x0010)", got)
	}
	if got := b.Read(0x1810); got != 0x42 {
		t.Errorf("Read(0x1810) = %#02x, want 0x42 (mirrors 0x0010)", got)
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := New(mappers.Dummy)
	b.ppu.Tick(242*341 + 2) // advance to vblank; OAMDATA writes are gated outside it

	b.Write(0x2003, 0x07) // OAMADDR
	b.Write(0x2004, 0x99) // OAMDATA at 0x07
	if got := b.Read(0x2004); got != 0 {
		t.Errorf("Read(0x2004) after a single OAMDATA write should report the next slot, got %#02x", got)
	}
	// 0x200B mirrors 0x2003 (0x200B & 0x2007 == 0x2003).
	b.Write(0x200B, 0x07)
	if got := b.Read(0x2004); got != 0x99 {
		t.Errorf("Read(0x2004) via mirrored OAMADDR = %#02x, want 0x99", got)
	}
}

func TestOAMDATAWriteIgnoredDuringRendering(t *testing.T) {
	b := New(mappers.Dummy)
	b.Write(0x2001, ppu.MASK_SHOW_BACKGROUND) // rendering enabled, status vblank bit clear

	b.Write(0x2003, 0x07)
	b.Write(0x2004, 0x99)
	if got := b.Read(0x2004); got == 0x99 {
		t.Errorf("OAMDATA write during rendering should be ignored, got it applied")
	}
}

func TestPrgRAMWindowIsIndependentOfPrgROM(t *testing.T) {
	b := New(mappers.Dummy)
	b.Write(0x6000, 0x55)
	if got := b.Read(0x6000); got != 0x55 {
		t.Errorf("Read(0x6000) = %#02x, want 0x55", got)
	}
	if got := b.Read(0x8000); got == 0x55 {
		t.Errorf("PRG-ROM at 0x8000 should be unaffected by a PRG-RAM write")
	}
}

func TestControllerStrobeAndRead(t *testing.T) {
	b := New(mappers.Dummy)
	b.Write(0x4016, 1) // strobe high, resets the shift index
	b.pad1.buttons = 0b0000_0101 // A and Select pressed, bits 0 and 2

	if got := b.Read(0x4016); got&1 != 1 {
		t.Errorf("first JOY1 read = %d, want bit 0 set (A)", got)
	}
	if got := b.Read(0x4016); got&1 != 0 {
		t.Errorf("second JOY1 read = %d, want bit 0 clear (B)", got)
	}
	if got := b.Read(0x4016); got&1 != 1 {
		t.Errorf("third JOY1 read = %d, want bit 0 set (Select)", got)
	}
}

func TestExpansionROMRegionReadsZero(t *testing.T) {
	b := New(mappers.Dummy)
	if got := b.Read(0x4020); got != 0 {
		t.Errorf("Read(0x4020) = %#02x, want 0 (unused expansion ROM)", got)
	}
}
