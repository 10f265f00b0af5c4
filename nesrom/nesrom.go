package nesrom

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/gintendo-emu/gintendo/internal/trace"
)

// ROM holds the parsed contents of an iNES/NES2.0 cartridge dump: the
// header plus the trainer, PRG and CHR byte slices it describes. Any
// bytes after CHR-ROM (miscellaneous ROMs) are not read.
type ROM struct {
	path    string
	h       *header
	trainer []byte
	prg     []byte
	chr     []byte
	chrRAM  bool // true when chrSize==0 and chr was allocated as RAM
}

const (
	trainerSize  = 512
	prgBlockSize = 16384
	chrBlockSize = 8192
)

// Load parses an iNES/NES2.0 file from path.
func Load(path string) (*ROM, error) {
	f, err := os.Open(path)
	if err != nil {
		werr := fmt.Errorf("%w: %v", ErrFileOpenFailure, err)
		trace.Load(path, werr)
		return nil, werr
	}
	defer f.Close()
	rom, err := New(path, f)
	if err != nil {
		trace.Load(path, err)
	}
	return rom, err
}

// New parses an iNES/NES2.0 image read from r. path is recorded only
// for diagnostics.
func New(path string, r io.Reader) (*ROM, error) {
	hbytes := make([]byte, 16)
	if _, err := io.ReadFull(r, hbytes); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrInvalidFile, err)
	}
	h, err := parseHeader(hbytes)
	if err != nil {
		return nil, err
	}

	rom := &ROM{path: path, h: h}

	if h.hasTrainer() {
		rom.trainer = make([]byte, trainerSize)
		if _, err := io.ReadFull(r, rom.trainer); err != nil {
			return nil, fmt.Errorf("%w: reading trainer: %v", ErrInvalidFile, err)
		}
	}

	prgLen := prgBlockSize * h.prgBlocks()
	rom.prg = make([]byte, prgLen)
	if _, err := io.ReadFull(r, rom.prg); err != nil {
		return nil, fmt.Errorf("%w: reading PRG-ROM (want %d bytes): %v", ErrInvalidFile, prgLen, err)
	}

	chrBlocks := h.chrBlocks()
	if chrBlocks == 0 {
		// CHR RAM: the mapper still needs a backing array, but
		// nothing is read from the file for it.
		rom.chr = make([]byte, chrBlockSize)
		rom.chrRAM = true
	} else {
		chrLen := chrBlockSize * chrBlocks
		rom.chr = make([]byte, chrLen)
		if _, err := io.ReadFull(r, rom.chr); err != nil {
			return nil, fmt.Errorf("%w: reading CHR-ROM (want %d bytes): %v", ErrInvalidFile, chrLen, err)
		}
	}

	glog.V(1).Infof("nesrom: loaded %s: %s", path, h)
	return rom, nil
}

func (r *ROM) String() string { return fmt.Sprintf("%s: %s", r.path, r.h) }

func (r *ROM) NumPrgBlocks() int { return r.h.prgBlocks() }
func (r *ROM) NumChrBlocks() int { return r.h.chrBlocks() }
func (r *ROM) HasChrRAM() bool   { return r.chrRAM }

func (r *ROM) PrgRead(addr uint16) (uint8, error) {
	if int(addr) >= len(r.prg) {
		return 0, fmt.Errorf("%w: PRG read at %#04x, size %d", ErrIndexOutOfRange, addr, len(r.prg))
	}
	return r.prg[addr], nil
}

func (r *ROM) PrgWrite(addr uint16, val uint8) {
	if int(addr) >= len(r.prg) {
		return // ROM is read-only hardware; out-of-range writes are dropped
	}
	r.prg[addr] = val
}

func (r *ROM) PrgSize() int { return len(r.prg) }

func (r *ROM) ChrRead(addr uint16) (uint8, error) {
	if int(addr) >= len(r.chr) {
		return 0, fmt.Errorf("%w: CHR read at %#04x, size %d", ErrIndexOutOfRange, addr, len(r.chr))
	}
	return r.chr[addr], nil
}

func (r *ROM) ChrWrite(addr uint16, val uint8) {
	if !r.chrRAM && int(addr) >= len(r.chr) {
		return
	}
	r.chr[addr] = val
}

func (r *ROM) MapperNum() uint16 { return r.h.mapperNum() }

func (r *ROM) MirroringMode() uint8 { return r.h.mirroringMode() }

func (r *ROM) HasSaveRAM() bool { return r.h.hasPrgRAM() }
