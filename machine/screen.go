// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"github.com/db47h/hack"
	"github.com/db47h/hack/hwlib"
	"github.com/pkg/errors"
)

// Screen geometry.
const (
	ScreenWidth  = 512
	ScreenHeight = 256
	wordsPerRow  = ScreenWidth / hack.WordWidth
	screenBits   = 13
)

// A Screen is the memory mapped frame buffer: 8K words of RAM holding a 512x256
// monochrome bitmap. Row y starts at word y*32; pixel x of a row is bit x%16
// of word x/16, counted from the least significant bit.
type Screen struct {
	*hwlib.RAM
}

// NewScreen returns a blank screen.
func NewScreen() *Screen {
	return &Screen{hwlib.NewRAM8K()}
}

// Word returns the screen word at offset i.
func (s *Screen) Word(i int) hack.Word {
	if i < 0 || i >= s.Size() {
		panic(errors.Errorf("screen offset %d out of range", i))
	}
	return s.Out(hack.FromInt(i, screenBits))
}

// Pixel reports whether pixel (x, y) is set.
func (s *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		panic(errors.Errorf("pixel (%d, %d) out of range", x, y))
	}
	w := s.Word(y*wordsPerRow + x/hack.WordWidth)
	return bool(w[hack.WordWidth-1-x%hack.WordWidth])
}
