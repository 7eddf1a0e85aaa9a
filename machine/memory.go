// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"github.com/db47h/hack"
	"github.com/db47h/hack/hwlib"
)

// Memory map boundaries.
const (
	RAMBase      = 0x0000 // general purpose RAM, 16K words
	ScreenBase   = 0x4000 // screen frame buffer, 8K words
	KeyboardAddr = 0x6000 // keyboard register

	RAMSize = ScreenBase
)

var zero16 = hack.Zero(hack.WordWidth)

// Memory is the whole address space of the computer.
//
//	Inputs: in[16], load, address[15], clk
//	Outputs: out[16]
//	Function: address[0..1] = 0x: RAM16K at address[1..14]
//	          address[0..1] = 10: Screen at address[2..14]
//	          address[0..1] = 11: Keyboard
//
// The keyboard is read only: its load line is left unconnected.
type Memory struct {
	ram    *hwlib.RAM
	screen *Screen
	kbd    *Keyboard
}

// NewMemory returns a cleared Memory reading key codes from kbd.
func NewMemory(kbd *Keyboard) *Memory {
	return &Memory{
		ram:    hwlib.NewRAM16K(),
		screen: NewScreen(),
		kbd:    kbd,
	}
}

// Tick implements hwlib.Block.
func (m *Memory) Tick(in hack.Word, load hack.Signal, address hack.Word, clk hack.Signal) hack.Word {
	hack.CheckWidth("Memory", address, hack.AddressWidth)
	sel := address[:2]
	loads := hwlib.DMux4Way(load, sel)
	cs := hwlib.DMux4Way(hack.Hi, sel)

	ramOut, scrOut := zero16, zero16
	if hwlib.Or(cs[0], cs[1]) {
		ramOut = m.ram.Tick(in, hwlib.Or(loads[0], loads[1]), address[1:], clk)
	}
	if cs[2] {
		scrOut = m.screen.Tick(in, loads[2], address[2:], clk)
	}
	return hwlib.Mux4Way16(ramOut, ramOut, scrOut, m.kbd.Key(), sel)
}

// Out implements hwlib.Block.
func (m *Memory) Out(address hack.Word) hack.Word {
	hack.CheckWidth("Memory", address, hack.AddressWidth)
	sel := address[:2]
	cs := hwlib.DMux4Way(hack.Hi, sel)

	ramOut, scrOut := zero16, zero16
	if hwlib.Or(cs[0], cs[1]) {
		ramOut = m.ram.Out(address[1:])
	}
	if cs[2] {
		scrOut = m.screen.Out(address[2:])
	}
	return hwlib.Mux4Way16(ramOut, ramOut, scrOut, m.kbd.Key(), sel)
}

// AddressWidth implements hwlib.Block.
func (m *Memory) AddressWidth() int { return hack.AddressWidth }

// Screen returns the screen part of m.
func (m *Memory) Screen() *Screen { return m.screen }

// Keyboard returns the keyboard wired to m.
func (m *Memory) Keyboard() *Keyboard { return m.kbd }
