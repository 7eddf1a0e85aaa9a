// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hack"
)

// HalfAdder returns the outputs of a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
func HalfAdder(a, b hack.Signal) (s, c hack.Signal) {
	return Xor(a, b), And(a, b)
}

// FullAdder returns the outputs of a 3 bits adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
func FullAdder(a, b, cin hack.Signal) (s, cout hack.Signal) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(s0, cin)
	return s, Or(c0, c1)
}

// AdderN returns the sum of two n-bits words and the carry out of the most
// significant bit.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n], c
//
// The carry ripples from the least significant bit (a[n-1]) to the most
// significant one (a[0]).
func AdderN(a, b hack.Word) (out hack.Word, c hack.Signal) {
	hack.CheckSameWidth("AdderN", a, b)
	out = make(hack.Word, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		out[i], c = FullAdder(a[i], b[i], c)
	}
	return out, c
}

// Add16 returns a + b modulo 2^16. The carry out is discarded: overflow wraps
// around in two's complement.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
func Add16(a, b hack.Word) hack.Word {
	hack.CheckWidth("Add16", a, hack.WordWidth)
	out, _ := AdderN(a, b)
	return out
}

// one16 is the constant 1, wired to true at the lsb and false elsewhere.
var one16 = hack.FromInt(1, hack.WordWidth)

// Inc16 returns in + 1 modulo 2^16.
//
//	Inputs: in[16]
//	Outputs: out[16]
func Inc16(in hack.Word) hack.Word {
	return Add16(in, one16)
}
