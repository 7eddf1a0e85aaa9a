// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hack provides the signal and word types of a 16 bits computer built
from a single NAND gate.

The parts themselves live in sub-packages: hwlib contains the gates, adders,
ALU, clocked storage and RAM; machine assembles them into a CPU, a memory
map with a screen and keyboard, and a Computer that runs programs loaded as
16 characters binary strings.

Words are ordered most significant bit first: w[0] is the sign bit of a two's
complement number and w[len(w)-1] its least significant bit. This is also the
order in which binary strings are written:

	w := hack.MustParseWord("0000000000010001")
	w.Int() // 17

Conversions between words and Go integers are provided for I/O and tests only.
Gate logic never uses them.
*/
package hack
