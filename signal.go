// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

// A Signal is the state of a single wire. Being a boolean, it can only
// hold 0 (false) or 1 (true).
type Signal bool

// Signal values.
const (
	Lo Signal = false
	Hi Signal = true
)

func (s Signal) String() string {
	if s {
		return "1"
	}
	return "0"
}

// Word widths used throughout the machine.
const (
	WordWidth    = 16 // data words and instructions
	AddressWidth = 15 // main memory and ROM addresses
)

// A Word is an ordered, fixed width group of signals. w[0] is the most
// significant bit.
//
// The width of a word is part of the contract of every operation that takes
// or returns one. Passing a word of the wrong width is a programming error
// and panics with a *WidthError.
type Word []Signal

// Zero returns a new word of the given width with all bits cleared.
func Zero(width int) Word {
	return make(Word, width)
}

// Width returns the number of signals in w.
func (w Word) Width() int { return len(w) }

// Equal reports whether w and v have the same width and the same signals.
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}
	return true
}

// Copy returns a copy of w.
func (w Word) Copy() Word {
	c := make(Word, len(w))
	copy(c, w)
	return c
}

func (w Word) String() string {
	b := make([]byte, len(w))
	for i, s := range w {
		if s {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
