// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hack"
)

var zero16 = hack.Zero(hack.WordWidth)

// ALU returns the outputs of the arithmetic logic unit.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//	Function: if zx { x = 0 }
//	          if nx { x = !x }
//	          if zy { y = 0 }
//	          if ny { y = !y }
//	          if f { out = x + y } else { out = x & y }
//	          if no { out = !out }
//	          zr = out == 0
//	          ng = out < 0
//
// The six control bits select one of 18 useful functions (0, 1, -1, x, y,
// !x, !y, -x, -y, x+1, y+1, x-1, y-1, x+y, x-y, y-x, x&y, x|y). Each step is a
// Mux16 between the unmodified and the modified operand.
func ALU(x, y hack.Word, zx, nx, zy, ny, f, no hack.Signal) (out hack.Word, zr, ng hack.Signal) {
	hack.CheckWidth("ALU", x, hack.WordWidth)
	hack.CheckWidth("ALU", y, hack.WordWidth)

	x = Mux16(x, zero16, zx)
	x = Mux16(x, Not16(x), nx)
	y = Mux16(y, zero16, zy)
	y = Mux16(y, Not16(y), ny)

	out = Mux16(And16(x, y), Add16(x, y), f)
	out = Mux16(out, Not16(out), no)

	zr = Not(Or(Or8Way(out[:8]), Or8Way(out[8:])))
	ng = out[0]
	return out, zr, ng
}
