// Package mappers implements and registers the cartridge mappers
// referenced numerically by iNES and NES2.0 ROM headers.
package mappers

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/gintendo-emu/gintendo/internal/trace"
	"github.com/gintendo-emu/gintendo/nesrom"
)

// ErrUnsupportedMapper is returned by Get when a ROM names a mapper id
// with no registered implementation.
var ErrUnsupportedMapper = errors.New("mappers: unsupported mapper")

// allMappers is the global registry of mapper implementations, keyed
// by iNES mapper id. Implementations register themselves from an
// init() in their own file.
var allMappers = map[uint16]Mapper{}

// RegisterMapper adds m to the registry under id. It panics on a
// duplicate id, since that can only happen from a programming mistake
// at package init time.
func RegisterMapper(id uint16, m Mapper) {
	if om, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: can't re-register id %d, already used by %q", id, om.Name()))
	}
	allMappers[id] = m
}

// Get returns the registered mapper for rom, initialized against it.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	m, ok := allMappers[id]
	if !ok {
		trace.Mapper(id)
		return nil, fmt.Errorf("%w: mapper %d", ErrUnsupportedMapper, id)
	}
	glog.V(1).Infof("mappers: loading ROM with mapper %d (%s)", id, m.Name())
	m.Init(rom)
	return m, nil
}

const prgRAMSize = 0x2000 // $6000-$7FFF

// Mapper is the contract the system bus and PPU memory map use to
// reach cartridge storage. A Mapper owns PRG-ROM, PRG-RAM, and
// CHR-ROM/RAM; it never touches CPU-internal RAM or PPU nametable
// VRAM, which belong to the system bus and the PPU respectively.
type Mapper interface {
	ID() uint16
	Init(*nesrom.ROM)
	Name() string
	PrgRead(uint16) (uint8, error)
	PrgWrite(uint16, uint8)
	PrgRAMRead(uint16) uint8
	PrgRAMWrite(uint16, uint8)
	ChrRead(uint16) (uint8, error)
	ChrWrite(uint16, uint8)
	MirroringMode() uint8
	HasSaveRAM() bool
}

// baseMapper implements the bookkeeping every mapper shares: its
// registry id, a handle to the parsed ROM, and the battery-backed
// PRG-RAM window at $6000-$7FFF.
type baseMapper struct {
	id     uint16
	rom    *nesrom.ROM
	name   string
	prgRAM []uint8
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{
		id:     id,
		name:   name,
		prgRAM: make([]uint8, prgRAMSize),
	}
}

func (bm *baseMapper) ID() uint16 { return bm.id }

func (bm *baseMapper) String() string { return bm.name }

func (bm *baseMapper) Name() string { return bm.name }

func (bm *baseMapper) Init(r *nesrom.ROM) { bm.rom = r }

func (bm *baseMapper) MirroringMode() uint8 { return bm.rom.MirroringMode() }

func (bm *baseMapper) HasSaveRAM() bool { return bm.rom.HasSaveRAM() }

func (bm *baseMapper) PrgRAMRead(addr uint16) uint8 { return bm.prgRAM[addr%prgRAMSize] }

func (bm *baseMapper) PrgRAMWrite(addr uint16, val uint8) { bm.prgRAM[addr%prgRAMSize] = val }
