// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package machine

import (
	"sync"

	"github.com/db47h/hack"
)

// Key codes for non printable keys. Printable keys use their ASCII code.
const (
	KeyNewline   = 128
	KeyBackspace = 129
	KeyLeft      = 130
	KeyUp        = 131
	KeyRight     = 132
	KeyDown      = 133
	KeyHome      = 134
	KeyEnd       = 135
	KeyPageUp    = 136
	KeyPageDown  = 137
	KeyInsert    = 138
	KeyDelete    = 139
	KeyEsc       = 140
	KeyF1        = 141 // F1 to F12 are 141 to 152
	KeyF12       = 152
)

// A Keyboard holds the code of the key currently pressed, or 0. It is
// driven by the host (Press/Release) and read by the memory map. A Keyboard
// is safe for concurrent use.
type Keyboard struct {
	mu  sync.RWMutex
	key hack.Word
}

// NewKeyboard returns a new Keyboard with no key pressed.
func NewKeyboard() *Keyboard {
	return &Keyboard{key: hack.Zero(hack.WordWidth)}
}

// Press sets the current key code.
func (k *Keyboard) Press(code int) {
	w := hack.FromInt(code, hack.WordWidth)
	k.mu.Lock()
	k.key = w
	k.mu.Unlock()
}

// Release clears the current key code.
func (k *Keyboard) Release() {
	k.mu.Lock()
	k.key = hack.Zero(hack.WordWidth)
	k.mu.Unlock()
}

// Key returns the current key code.
func (k *Keyboard) Key() hack.Word {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.key.Copy()
}
