// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

// FromInt returns the two's complement encoding of v on width bits. Values
// outside of the representable range wrap around.
func FromInt(v int, width int) Word {
	w := make(Word, width)
	for bit := 0; bit < width; bit++ {
		w[width-bit-1] = v&(1<<uint(bit)) != 0
	}
	return w
}

// Uint returns the value of w as an unsigned integer.
func (w Word) Uint() uint {
	var out uint
	for _, s := range w {
		out <<= 1
		if s {
			out |= 1
		}
	}
	return out
}

// Int returns the value of w as a two's complement signed integer. w[0] is
// the sign bit.
func (w Word) Int() int {
	if len(w) == 0 {
		return 0
	}
	v := int(w.Uint())
	if w[0] {
		v -= 1 << uint(len(w))
	}
	return v
}
