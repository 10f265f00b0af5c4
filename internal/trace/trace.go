// Package trace is a thin wrapper over glog for the diagnostic events
// the CPU, mapper registry, and ROM loader raise: invalid opcodes,
// unsupported mappers, and ROM load failures.
package trace

import "github.com/golang/glog"

// Opcode logs an unimplemented or invalid opcode byte encountered at pc.
func Opcode(pc uint16, b uint8) {
	glog.V(1).Infof("mos6502: invalid opcode 0x%02x at pc=0x%04x", b, pc)
}

// Mapper logs an unsupported cartridge mapper id.
func Mapper(id uint16) {
	glog.V(1).Infof("mappers: unsupported mapper %d", id)
}

// Load logs a ROM-loading failure with its source path.
func Load(path string, err error) {
	glog.V(1).Infof("nesrom: failed loading %q: %v", path, err)
}
