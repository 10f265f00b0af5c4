// Package debugger exposes a read-only peek/step surface over a running
// mos6502.CPU for an external debugger client. It is not a REPL: it
// hands back register snapshots and lets the caller single-step or
// examine memory, and leaves command parsing and display to the client.
package debugger

import "github.com/gintendo-emu/gintendo/mos6502"

// Snapshot is an immutable copy of the CPU's architectural registers
// at one point in time.
type Snapshot struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	P  uint8
}

// Debugger wraps a *mos6502.CPU with the narrow surface an external
// client needs: take a snapshot, step one instruction, and peek memory
// without disturbing CPU state.
type Debugger struct {
	cpu *mos6502.CPU
}

// New returns a Debugger attached to cpu. The CPU is not reset or
// otherwise modified.
func New(cpu *mos6502.CPU) *Debugger {
	return &Debugger{cpu: cpu}
}

// Snapshot captures the current register file.
func (d *Debugger) Snapshot() Snapshot {
	return Snapshot{
		PC: d.cpu.PC(),
		SP: d.cpu.SP(),
		A:  d.cpu.A(),
		X:  d.cpu.X(),
		Y:  d.cpu.Y(),
		P:  d.cpu.P(),
	}
}

// Peek reads a byte through the CPU's installed bus without changing
// CPU state, for a client's memory-examine command. Reads of
// memory-mapped registers (PPU, controller) still have their usual
// read side effects.
func (d *Debugger) Peek(addr uint16) uint8 {
	return d.cpu.Peek(addr)
}

// Step executes exactly one instruction (or interrupt acceptance
// check) and reports any decode failure.
func (d *Debugger) Step() error {
	_, err := d.cpu.Step()
	return err
}

// Cycles returns the CPU's running cycle count.
func (d *Debugger) Cycles() uint64 {
	return d.cpu.Cycles()
}
