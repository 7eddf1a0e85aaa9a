// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hack"
)

// A FlipFlop is a gated latch made of four NAND gates and a feedback loop.
// The zero value holds 0.
//
//	Inputs: in, en
//	Outputs: out
//	Function: if en { out = in } else { out = out(t-1) }
//
// The feedback wire is the stored output. Update evaluates the loop once,
// which is enough for it to settle.
type FlipFlop struct {
	q hack.Signal
}

// Update evaluates the latch with the given inputs and returns its new
// output.
func (ff *FlipFlop) Update(in, en hack.Signal) hack.Signal {
	s := Nand(in, en)
	r := Nand(Not(in), en)
	ff.q = Nand(s, Nand(r, ff.q))
	return ff.q
}

// Out returns the latched value.
func (ff *FlipFlop) Out() hack.Signal { return ff.q }

// A Bit is a 1 bit register.
//
//	Inputs: in, load, clk
//	Outputs: out
//	Function: if load && clk { state = in }
//	          out = state(t-1)
//
// Tick returns the value held when the clock phase began: a value loaded
// during a high phase is visible from the next phase on, like the output of
// a clocked DFF.
type Bit struct {
	ff FlipFlop
}

// Tick evaluates b for one clock phase.
func (b *Bit) Tick(in, load, clk hack.Signal) hack.Signal {
	out := b.ff.Out()
	b.ff.Update(in, And(load, clk))
	return out
}

// Out returns the committed state of b.
func (b *Bit) Out() hack.Signal { return b.ff.Out() }

// A Register is a 16 bits register: 16 Bits sharing the same load and clock
// signals.
//
//	Inputs: in[16], load, clk
//	Outputs: out[16]
//	Function: if load && clk { state = in }
//	          out = state(t-1)
type Register struct {
	bits [hack.WordWidth]Bit
}

// Tick evaluates r for one clock phase and returns the word held when the
// phase began.
func (r *Register) Tick(in hack.Word, load, clk hack.Signal) hack.Word {
	hack.CheckWidth("Register", in, hack.WordWidth)
	out := make(hack.Word, hack.WordWidth)
	for i := range r.bits {
		out[i] = r.bits[i].Tick(in[i], load, clk)
	}
	return out
}

// Out returns the committed state of r.
func (r *Register) Out() hack.Word {
	out := make(hack.Word, hack.WordWidth)
	for i := range r.bits {
		out[i] = r.bits[i].Out()
	}
	return out
}
