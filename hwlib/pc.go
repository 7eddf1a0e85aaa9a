// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hack"
)

// A PC is a 16 bits program counter: a Register with reset, load and
// increment logic in front of it.
//
//	Inputs: in[16], load, inc, reset, clk
//	Outputs: out[16]
//	Function: if reset { next = 0 }
//	          else if load { next = in }
//	          else if inc { next = out + 1 }
//	          else { next = out }
//	          if clk { state = next }
//	          out = state(t-1)
type PC struct {
	r Register
}

// Tick evaluates the counter for one clock phase and returns the word held
// when the phase began.
func (pc *PC) Tick(in hack.Word, load, inc, reset, clk hack.Signal) hack.Word {
	hack.CheckWidth("PC", in, hack.WordWidth)
	cur := pc.r.Out()
	next := Mux16(cur, Inc16(cur), inc)
	next = Mux16(next, in, load)
	next = Mux16(next, zero16, reset)
	return pc.r.Tick(next, Or(Or(load, inc), reset), clk)
}

// Out returns the committed counter value.
func (pc *PC) Out() hack.Word { return pc.r.Out() }
