// Command gintendo loads an iNES/NES2.0 ROM, wires its cartridge
// mapper to the CPU/PPU bus, and runs it in an ebiten window.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gintendo-emu/gintendo/console"
	"github.com/gintendo-emu/gintendo/internal/debugger"
	"github.com/gintendo-emu/gintendo/mappers"
	"github.com/gintendo-emu/gintendo/nesrom"
)

const (
	exitOK    = 0
	exitUsage = 1
)

// breakpointList collects repeated -breakpoint flags into a list of
// addresses. main only logs them at startup; internal/debugger keeps
// no breakpoint set.
type breakpointList []uint16

func (b *breakpointList) String() string {
	s := make([]string, len(*b))
	for i, a := range *b {
		s[i] = strconv.FormatUint(uint64(a), 16)
	}
	return strings.Join(s, ",")
}

func (b *breakpointList) Set(v string) error {
	a, err := strconv.ParseUint(v, 16, 16)
	if err != nil {
		return err
	}
	*b = append(*b, uint16(a))
	return nil
}

var (
	romFile     = flag.String("rom", "", "Path to an iNES/NES2.0 ROM to run.")
	entryPoint  = flag.Uint("entry", 0, "Override the reset-vector entry point (decimal or 0x-prefixed hex); when absent, the ROM's reset vector is used.")
	entrySet    bool
	breakpoints breakpointList
)

func init() {
	flag.Var(&breakpoints, "breakpoint", "Breakpoint address in hex (repeatable); logged at startup.")
}

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(exitUsage)
	}
	entrySet = isFlagSet("entry")

	if *romFile == "" {
		glog.Exitf("usage: gintendo -rom <path> [-breakpoint hhhh ...] [-entry 0xhhhh]")
	}

	rom, err := nesrom.Load(*romFile)
	if err != nil {
		glog.Exitf("gintendo: couldn't load %q: %v", *romFile, err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		glog.Exitf("gintendo: %v", err)
	}

	bus := console.New(m)

	if entrySet {
		bus.CPU().SetPC(uint16(*entryPoint))
	}

	dbg := debugger.New(bus.CPU())
	for _, bp := range breakpoints {
		glog.V(1).Infof("gintendo: breakpoint seeded at 0x%04x (pc currently 0x%04x)", bp, dbg.Snapshot().PC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go bus.Run(ctx)

	if err := ebiten.RunGame(bus); err != nil {
		glog.Errorf("gintendo: %v", err)
	}

	cancel()
	os.Exit(exitOK)
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
