// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"github.com/db47h/hack"
	"github.com/db47h/hack/hwlib"
	"github.com/pkg/errors"
)

// ROMSize is the number of instructions a ROM can hold.
const ROMSize = 1 << hack.AddressWidth

// A ROM is the instruction storage: a RAM32K that is written only when a
// program is loaded.
type ROM struct {
	ram *hwlib.RAM
	n   int
}

// NewROM returns a ROM filled with zeros.
func NewROM() *ROM {
	return &ROM{ram: hwlib.NewRAM32K()}
}

// Load replaces the content of r with the given instructions. Addresses past
// the end of the program are zero filled.
func (r *ROM) Load(program []hack.Word) error {
	if len(program) > ROMSize {
		return errors.Errorf("program too large: %d instructions, max %d", len(program), ROMSize)
	}
	for i, w := range program {
		if len(w) != hack.WordWidth {
			return errors.Wrapf(&hack.WidthError{Op: "ROM", Expected: hack.WordWidth, Got: len(w)}, "instruction %d", i)
		}
	}
	ram := hwlib.NewRAM32K()
	for i, w := range program {
		ram.Tick(w, hack.Hi, hack.FromInt(i, hack.AddressWidth), hack.Hi)
	}
	r.ram, r.n = ram, len(program)
	return nil
}

// LoadStrings is like Load but takes instructions as 16 characters binary
// strings.
func (r *ROM) LoadStrings(program []string) error {
	ws := make([]hack.Word, len(program))
	for i, s := range program {
		w, err := hack.ParseWordN(s, hack.WordWidth)
		if err != nil {
			return errors.Wrapf(err, "instruction %d", i)
		}
		ws[i] = w
	}
	return r.Load(ws)
}

// Fetch returns the instruction at the given 15 bits address.
func (r *ROM) Fetch(address hack.Word) hack.Word {
	return r.ram.Out(address)
}

// Len returns the length of the loaded program.
func (r *ROM) Len() int { return r.n }
