package console

import (
	"context"
	"math"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gintendo-emu/gintendo/mappers"
	"github.com/gintendo-emu/gintendo/mos6502"
	"github.com/gintendo-emu/gintendo/ppu"
)

const (
	NES_BASE_MEMORY = 0x800 // 2KB built in RAM

	MAX_ADDRESS          = math.MaxUint16
	MEM_SIZE             = MAX_ADDRESS + 1
	MAX_NES_BASE_RAM     = 0x1FFF
	MAX_PPU_REG_MIRRORED = 0x3FFF
	MAX_IO_REG           = 0x4020
	SRAM_START           = 0x6000
	SRAM_END             = 0x8000 // exclusive; PRG-ROM starts here
)

const (
	OAMDMA       = 0x4014 // Triggers DMA from CPU memory to OAM
	JOY1         = 0x4016
	JOY2         = 0x4017
	cyclesPerDot = 3 // NTSC: 3 PPU dots per CPU cycle
)

// Bus wires the CPU, PPU, cartridge mapper, and controller ports
// together as the NES's single shared address space. It is the
// implementation of both mos6502.Memory and ppu.Bus.
type Bus struct {
	cpu    *mos6502.CPU
	ppu    *ppu.PPU
	mapper mappers.Mapper
	ram    []uint8
	pad1   *controller
	ticks  uint64
}

func New(m mappers.Mapper) *Bus {
	bus := &Bus{
		mapper: m,
		ram:    make([]uint8, NES_BASE_MEMORY),
		pad1:   newController(),
	}

	bus.cpu = mos6502.New(bus)
	bus.ppu = ppu.New(bus)
	bus.ppu.SetMirrorMode(m.MirroringMode())

	w, h := bus.ppu.GetResolution()
	ebiten.SetWindowSize(w*2, h*2) // Start with 2x the screen size
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return bus
}

func (b *Bus) MirrorMode() uint8 {
	return b.mapper.MirroringMode()
}

// CPU exposes the installed core for debugger clients; it is not used
// by anything inside this package.
func (b *Bus) CPU() *mos6502.CPU {
	return b.cpu
}

// Layout returns the constant resolution of the NES and is part of
// the ebiten.Game interface. By returning constants here, we will
// force ebiten to scale the display when the window size changes.
func (b *Bus) Layout(w, h int) (int, int) {
	return b.ppu.GetResolution()
}

// Draw updates the displayed ebiten window with the current state of
// the PPU.
func (b *Bus) Draw(screen *ebiten.Image) {
	w, h := b.ppu.GetResolution()
	px := b.ppu.GetPixels()

	buf := make([]byte, 0, w*h*4)
	for _, c := range px {
		buf = append(buf, c[0], c[1], c[2], c[3])
	}
	screen.WritePixels(buf)
}

// Update is called by ebiten roughly every 1/60s and will be our
// driver for the emulation.
func (b *Bus) Update() error {
	// We do work in a different goroutine and don't need ebiten
	// to drive this. We have to be implemented and called though
	// as it's part of the required interface.
	return nil
}

// TriggerNMI is used by the PPU to signal the CPU that it is in vblank.
func (b *Bus) TriggerNMI() {
	b.cpu.RequestNMI()
}

// ChrRead is used by the PPU to access CHR-ROM/RAM in the loaded
// Mapper across an inclusive [lo, hi] byte range.
func (b *Bus) ChrRead(lo, hi uint16) []uint8 {
	out := make([]uint8, 0, int(hi-lo)+1)
	for a := lo; a <= hi; a++ {
		v, err := b.mapper.ChrRead(a)
		if err != nil {
			glog.Errorf("console: %v", err)
		}
		out = append(out, v)
	}
	return out
}

func (b *Bus) Read(addr uint16) uint8 {
	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr <= MAX_NES_BASE_RAM:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		return b.ram[addr&0x7FF]
	case addr <= MAX_PPU_REG_MIRRORED:
		// PPU registers are mirrored between 0x2000 and 0x4000
		return b.ppu.ReadReg(0x2000 + addr&0x0007)
	case addr == JOY1:
		return b.pad1.read()
	case addr < MAX_IO_REG:
		return 0
	case addr < SRAM_START:
		return 0 // expansion ROM, unused
	case addr < SRAM_END:
		return b.mapper.PrgRAMRead(addr - SRAM_START)
	case addr <= MAX_ADDRESS:
		v, err := b.mapper.PrgRead(addr)
		if err != nil {
			glog.Errorf("console: %v", err)
		}
		return v
	}

	panic("should never happen") // hah, prod crashes await!
}

func (b *Bus) ClearMem() {
	b.ram = make([]uint8, len(b.ram))
}

func (b *Bus) Write(addr uint16, val uint8) {
	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr <= MAX_NES_BASE_RAM:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		b.ram[addr&0x07FF] = val
	case addr <= MAX_PPU_REG_MIRRORED:
		// PPU registers are mirrored between 0x2000 and 0x4000
		b.ppu.WriteReg(0x2000+addr&0x0007, val)
	case addr == JOY1:
		b.pad1.write(val)
	case addr < MAX_IO_REG:
		switch addr {
		case OAMDMA:
			// Real hardware stalls the CPU for 513-514 cycles
			// while this runs; this core doesn't account for
			// that stall.
			base := uint16(val) << 8
			oamAddr := b.ppu.OAMAddr()
			for a := base; a < base+256; a++ {
				b.ppu.WriteOAM(oamAddr, b.Read(a))
				oamAddr++
			}
		}
	case addr < SRAM_START:
		// expansion ROM, unused
	case addr < SRAM_END:
		b.mapper.PrgRAMWrite(addr-SRAM_START, val)
	case addr <= MAX_ADDRESS:
		b.mapper.PrgWrite(addr, val)
	}
}

// Run drives the emulation until ctx is cancelled or the CPU decodes
// an invalid opcode, stepping the CPU and advancing the PPU by 3 dots
// per CPU cycle consumed.
func (b *Bus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			cycles, err := b.cpu.Step()
			if err != nil {
				glog.Errorf("mos6502: halting: %v", err)
				return
			}
			b.ppu.Tick(cycles * cyclesPerDot)
			b.ticks += uint64(cycles)
		}
	}
}
