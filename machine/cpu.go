// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"github.com/db47h/hack"
	"github.com/db47h/hack/hwlib"
)

// Instruction bit positions. Bit 0 is the most significant bit.
//
// A-instruction: 0vvv vvvv vvvv vvvv
// C-instruction: 1xxa cccc ccdd djjj
const (
	bitType = 0  // 0: A-instruction, 1: C-instruction
	bitUseM = 3  // ALU y operand: 0: A, 1: M
	bitZX   = 4  // ALU control bits zx, nx, zy, ny, f, no
	bitDstA = 10 // destination bits A, D, M
	bitDstD = 11
	bitDstM = 12
	bitJLT  = 13 // jump bits: negative, zero, positive
	bitJEQ  = 14
	bitJGT  = 15
)

// Output is the output bus of the CPU.
type Output struct {
	OutM     hack.Word   // value to write to memory (16 bits)
	WriteM   hack.Signal // memory write strobe
	AddressM hack.Word   // memory address (15 bits)
	PC       hack.Word   // address of the next instruction (15 bits)
}

// control is one interpretation of an instruction: the values it drives on
// the A register input, the register load lines, the memory write strobe and
// the program counter load line.
type control struct {
	aIn    hack.Word
	loadA  hack.Signal
	loadD  hack.Signal
	writeM hack.Signal
	jump   hack.Signal
}

// muxControl selects between two complete interpretations.
func muxControl(a, b control, sel hack.Signal) control {
	return control{
		aIn:    hwlib.Mux16(a.aIn, b.aIn, sel),
		loadA:  hwlib.Mux(a.loadA, b.loadA, sel),
		loadD:  hwlib.Mux(a.loadD, b.loadD, sel),
		writeM: hwlib.Mux(a.writeM, b.writeM, sel),
		jump:   hwlib.Mux(a.jump, b.jump, sel),
	}
}

// aControl interprets instr as an A-instruction: load the instruction into A.
func aControl(instr hack.Word) control {
	return control{aIn: instr, loadA: hack.Hi}
}

// cControl interprets instr as a C-instruction given the ALU outputs.
func cControl(instr, out hack.Word, zr, ng hack.Signal) control {
	pos := hwlib.And(hwlib.Not(ng), hwlib.Not(zr))
	jump := hwlib.Or(
		hwlib.Or(hwlib.And(instr[bitJLT], ng), hwlib.And(instr[bitJEQ], zr)),
		hwlib.And(instr[bitJGT], pos))
	return control{
		aIn:    out,
		loadA:  instr[bitDstA],
		loadD:  instr[bitDstD],
		writeM: instr[bitDstM],
		jump:   jump,
	}
}

// A CPU is the central processing unit: A and D registers, a program
// counter and an ALU.
//
//	Inputs: inM[16], instruction[16], reset, clk
//	Outputs: outM[16], writeM, addressM[15], pc[15]
//
// Both interpretations of the instruction are computed on every phase, and
// the instruction type bit selects one of them. Memory writes are not
// performed by the CPU: outM, writeM and addressM are reported to the caller.
type CPU struct {
	a  hwlib.Register
	d  hwlib.Register
	pc hwlib.PC
}

// Tick evaluates the CPU for one clock phase.
//
// OutM and WriteM are computed from the registers as they were when the
// phase began. AddressM and PC reflect the registers at the end of the phase,
// which is where the next instruction and memory word must be fetched from.
//
// When reset is set, the program counter is cleared and neither jumps nor
// increments.
func (c *CPU) Tick(inM, instruction hack.Word, reset, clk hack.Signal) Output {
	hack.CheckWidth("CPU inM", inM, hack.WordWidth)
	hack.CheckWidth("CPU instruction", instruction, hack.WordWidth)

	a, d := c.a.Out(), c.d.Out()
	y := hwlib.Mux16(a, inM, instruction[bitUseM])
	ctl := instruction[bitZX : bitZX+6]
	out, zr, ng := hwlib.ALU(d, y, ctl[0], ctl[1], ctl[2], ctl[3], ctl[4], ctl[5])

	sel := muxControl(aControl(instruction), cControl(instruction, out, zr, ng), instruction[bitType])

	c.a.Tick(sel.aIn, sel.loadA, clk)
	c.d.Tick(out, sel.loadD, clk)

	run := hwlib.Not(reset)
	load := hwlib.And(sel.jump, run)
	inc := hwlib.And(hwlib.Not(sel.jump), run)
	c.pc.Tick(c.a.Out(), load, inc, reset, clk)

	return Output{
		OutM:     out,
		WriteM:   sel.writeM,
		AddressM: c.a.Out()[1:],
		PC:       c.pc.Out()[1:],
	}
}

// A returns the committed value of the A register.
func (c *CPU) A() hack.Word { return c.a.Out() }

// D returns the committed value of the D register.
func (c *CPU) D() hack.Word { return c.d.Out() }

// PC returns the committed value of the program counter.
func (c *CPU) PC() hack.Word { return c.pc.Out() }
