// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the parts of the hack computer, from the NAND gate
// up to the ALU, clocked storage and RAM.
//
// Nand is the only part implemented with a native Go operator. Every other
// part is a function composed of Nand and of the parts built before it, so
// that the whole library is a NAND netlist written as Go calls.
//
// Parts that take words check their widths and panic with a *hack.WidthError
// on mismatch.
package hwlib

import (
	"github.com/db47h/hack"
)

// Nand returns a NAND gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func Nand(a, b hack.Signal) hack.Signal {
	return !(a && b)
}

// Not returns a NOT gate output.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
func Not(in hack.Signal) hack.Signal {
	return Nand(in, in)
}

// And returns a AND gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
func And(a, b hack.Signal) hack.Signal {
	return Not(Nand(a, b))
}

// Or returns a OR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
func Or(a, b hack.Signal) hack.Signal {
	return Nand(Not(a), Not(b))
}

// Nor returns a NOR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
func Nor(a, b hack.Signal) hack.Signal {
	return Not(Or(a, b))
}

// Xor returns a XOR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
func Xor(a, b hack.Signal) hack.Signal {
	nandAB := Nand(a, b)
	return Nand(Nand(a, nandAB), Nand(b, nandAB))
}

// Xnor returns a XNOR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
func Xnor(a, b hack.Signal) hack.Signal {
	return Nand(Or(a, b), Nand(a, b))
}

// NotN returns the bitwise complement of in.
//
//	Inputs: in[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = !in[i] }
func NotN(in hack.Word) hack.Word {
	out := make(hack.Word, len(in))
	for i := range in {
		out[i] = Not(in[i])
	}
	return out
}

// Not16 is a 16 bits NotN.
func Not16(in hack.Word) hack.Word {
	hack.CheckWidth("Not16", in, hack.WordWidth)
	return NotN(in)
}

// GateN applies the two inputs gate fn to each pair of bits in a and b.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = fn(a[i], b[i]) }
func GateN(op string, fn func(a, b hack.Signal) hack.Signal, a, b hack.Word) hack.Word {
	hack.CheckSameWidth(op, a, b)
	out := make(hack.Word, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// AndN returns the bitwise AND of two words of the same width.
func AndN(a, b hack.Word) hack.Word { return GateN("AndN", And, a, b) }

// OrN returns the bitwise OR of two words of the same width.
func OrN(a, b hack.Word) hack.Word { return GateN("OrN", Or, a, b) }

// And16 returns the bitwise AND of two 16 bits words.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = a[i] && b[i] }
func And16(a, b hack.Word) hack.Word {
	hack.CheckWidth("And16", a, hack.WordWidth)
	return GateN("And16", And, a, b)
}

// Or16 returns the bitwise OR of two 16 bits words.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = a[i] || b[i] }
func Or16(a, b hack.Word) hack.Word {
	hack.CheckWidth("Or16", a, hack.WordWidth)
	return GateN("Or16", Or, a, b)
}

// OrNWay returns a N-Way OR gate output.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
func OrNWay(in hack.Word) hack.Signal {
	if len(in) == 0 {
		return hack.Lo
	}
	out := in[0]
	for _, s := range in[1:] {
		out = Or(out, s)
	}
	return out
}

// AndNWay returns a N-Way AND gate output.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
func AndNWay(in hack.Word) hack.Signal {
	if len(in) == 0 {
		return hack.Hi
	}
	out := in[0]
	for _, s := range in[1:] {
		out = And(out, s)
	}
	return out
}

// Or8Way is an 8 ways OrNWay.
func Or8Way(in hack.Word) hack.Signal {
	hack.CheckWidth("Or8Way", in, 8)
	return OrNWay(in)
}
