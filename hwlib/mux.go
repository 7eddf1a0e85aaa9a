// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hack"
	"github.com/pkg/errors"
)

// Mux returns a multiplexer output.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(a, b, sel hack.Signal) hack.Signal {
	return Nand(Nand(a, Not(sel)), Nand(b, sel))
}

// DMux returns the outputs of a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMux(in, sel hack.Signal) (a, b hack.Signal) {
	return And(in, Not(sel)), And(in, sel)
}

// MuxN returns a n-bits Mux output.
//
//	Inputs: a[n], b[n], sel
//	Outputs: out[n]
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
func MuxN(a, b hack.Word, sel hack.Signal) hack.Word {
	hack.CheckSameWidth("MuxN", a, b)
	out := make(hack.Word, len(a))
	for i := range a {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Mux16 is a 16 bits MuxN.
func Mux16(a, b hack.Word, sel hack.Signal) hack.Word {
	hack.CheckWidth("Mux16", a, hack.WordWidth)
	return MuxN(a, b, sel)
}

// MuxWay selects one of 2^len(sel) words of the same width.
//
//	Inputs: in[ways][n], sel[m] with ways = 2^m
//	Outputs: out[n]
//	Function: out = in[sel]
//
// sel[0] is the most significant selector bit. The part is a binary tree of
// MuxN: the low order bits of sel select within each half of in, sel[0]
// selects between the halves.
func MuxWay(in []hack.Word, sel hack.Word) hack.Word {
	if len(sel) == 0 || len(in) != 1<<uint(len(sel)) {
		panic(errors.Errorf("MuxWay: %d inputs for a %d bits selector", len(in), len(sel)))
	}
	if len(sel) == 1 {
		return MuxN(in[0], in[1], sel[0])
	}
	half := len(in) / 2
	lo := MuxWay(in[:half], sel[1:])
	hi := MuxWay(in[half:], sel[1:])
	return MuxN(lo, hi, sel[0])
}

// Mux4Way16 returns a 4 ways 16 bits multiplexer output.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
//	Function: out = a if sel == 00, b if sel == 01, c if sel == 10, d if sel == 11
func Mux4Way16(a, b, c, d hack.Word, sel hack.Word) hack.Word {
	hack.CheckWidth("Mux4Way16", sel, 2)
	for _, w := range [...]hack.Word{a, b, c, d} {
		hack.CheckWidth("Mux4Way16", w, hack.WordWidth)
	}
	return MuxWay([]hack.Word{a, b, c, d}, sel)
}

// Mux8Way16 returns a 8 ways 16 bits multiplexer output.
//
//	Inputs: in[8][16], sel[3]
//	Outputs: out[16]
//	Function: out = in[sel]
func Mux8Way16(in [8]hack.Word, sel hack.Word) hack.Word {
	hack.CheckWidth("Mux8Way16", sel, 3)
	for _, w := range in {
		hack.CheckWidth("Mux8Way16", w, hack.WordWidth)
	}
	return MuxWay(in[:], sel)
}

// DMuxWay routes in to one of 2^len(sel) outputs.
//
//	Inputs: in, sel[m]
//	Outputs: out[2^m]
//	Function: out[sel] = in; all other outputs are 0
//
// sel[0] is the most significant selector bit and drives the root DMux of
// the tree.
func DMuxWay(in hack.Signal, sel hack.Word) []hack.Signal {
	if len(sel) == 0 {
		panic(errors.New("DMuxWay: empty selector"))
	}
	a, b := DMux(in, sel[0])
	if len(sel) == 1 {
		return []hack.Signal{a, b}
	}
	return append(DMuxWay(a, sel[1:]), DMuxWay(b, sel[1:])...)
}

// DMux4Way returns the outputs of a 4 ways demultiplexer.
//
//	Inputs: in, sel[2]
//	Outputs: out[4]
//	Function: out[sel] = in; all other outputs are 0
func DMux4Way(in hack.Signal, sel hack.Word) (out [4]hack.Signal) {
	hack.CheckWidth("DMux4Way", sel, 2)
	copy(out[:], DMuxWay(in, sel))
	return out
}

// DMux8Way returns the outputs of a 8 ways demultiplexer.
//
//	Inputs: in, sel[3]
//	Outputs: out[8]
//	Function: out[sel] = in; all other outputs are 0
func DMux8Way(in hack.Signal, sel hack.Word) (out [8]hack.Signal) {
	hack.CheckWidth("DMux8Way", sel, 3)
	copy(out[:], DMuxWay(in, sel))
	return out
}
