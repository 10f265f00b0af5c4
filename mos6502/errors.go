package mos6502

import "errors"

// ErrInvalidOpcode is returned by Step when the byte at PC does not
// decode to one of the 151 documented opcodes.
var ErrInvalidOpcode = errors.New("mos6502: invalid opcode")
