package nesrom

import "errors"

// ErrInvalidFile is returned when a ROM's header fails the magic
// check, advertises an inconsistent size, or otherwise doesn't parse
// as iNES/NES2.0.
var ErrInvalidFile = errors.New("nesrom: invalid ROM file")

// ErrIndexOutOfRange is returned by PRG/CHR accessors given an address
// past the end of the loaded data.
var ErrIndexOutOfRange = errors.New("nesrom: index out of range")

// ErrFileOpenFailure is returned by Load when the ROM path can't be
// opened.
var ErrFileOpenFailure = errors.New("nesrom: couldn't open ROM file")
