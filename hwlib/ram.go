// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hack"
	"github.com/pkg/errors"
)

// A Block is word addressable clocked storage.
type Block interface {
	// Tick evaluates the block for one clock phase. It returns the word
	// stored at address when the phase began and stores in at address if
	// load and clk are both set.
	Tick(in hack.Word, load hack.Signal, address hack.Word, clk hack.Signal) hack.Word
	// Out returns the word currently stored at address.
	Out(address hack.Word) hack.Word
	// AddressWidth returns the number of address bits of the block.
	AddressWidth() int
}

// A Cell is a single word Block. Its address is 0 bits wide.
type Cell struct {
	r Register
}

// Tick implements Block.
func (c *Cell) Tick(in hack.Word, load hack.Signal, address hack.Word, clk hack.Signal) hack.Word {
	hack.CheckWidth("Cell", address, 0)
	return c.r.Tick(in, load, clk)
}

// Out implements Block.
func (c *Cell) Out(address hack.Word) hack.Word {
	hack.CheckWidth("Cell", address, 0)
	return c.r.Out()
}

// AddressWidth implements Block.
func (c *Cell) AddressWidth() int { return 0 }

// A RAM is a Block built from 2^k identical sub-blocks.
//
//	Inputs: in[16], load, address[k+m], clk
//	Outputs: out[16]
//	Function: sel = address[m:]       // k low order bits
//	          sub = address[:m]       // remaining high order bits
//	          loads = DMuxWay(load, sel)
//	          out = MuxWay(blocks[i].Tick(in, loads[i], sub, clk)..., sel)
//
// where m is the address width of the sub-blocks.
//
// A chip select line is decoded from sel alongside the load lines, and only
// the selected sub-block is evaluated. A deselected block cannot store
// anything since its load line is low, and its output is dropped by the
// multiplexer.
type RAM struct {
	blocks []Block
	k      int // selector width
	width  int // address width
}

// NewRAM returns a RAM of the given number of ways. ways must be a power of
// two greater than one. sub is called once per way to build the
// sub-blocks, which must all have the same address width.
func NewRAM(ways int, sub func() Block) *RAM {
	if ways < 2 || ways&(ways-1) != 0 {
		panic(errors.Errorf("NewRAM: invalid number of ways %d", ways))
	}
	m := &RAM{blocks: make([]Block, ways)}
	for ways > 1 {
		m.k++
		ways >>= 1
	}
	for i := range m.blocks {
		m.blocks[i] = sub()
		if i > 0 && m.blocks[i].AddressWidth() != m.blocks[0].AddressWidth() {
			panic(errors.New("NewRAM: sub-blocks address width mismatch"))
		}
	}
	m.width = m.blocks[0].AddressWidth() + m.k
	return m
}

func (m *RAM) split(op string, address hack.Word) (sel, sub hack.Word) {
	hack.CheckWidth(op, address, m.width)
	n := len(address) - m.k
	return address[n:], address[:n]
}

// Tick implements Block.
func (m *RAM) Tick(in hack.Word, load hack.Signal, address hack.Word, clk hack.Signal) hack.Word {
	sel, sub := m.split("RAM", address)
	loads := DMuxWay(load, sel)
	cs := DMuxWay(hack.Hi, sel)
	outs := make([]hack.Word, len(m.blocks))
	for i, b := range m.blocks {
		if cs[i] {
			outs[i] = b.Tick(in, loads[i], sub, clk)
		} else {
			outs[i] = zero16
		}
	}
	return MuxWay(outs, sel)
}

// Out implements Block.
func (m *RAM) Out(address hack.Word) hack.Word {
	sel, sub := m.split("RAM", address)
	cs := DMuxWay(hack.Hi, sel)
	outs := make([]hack.Word, len(m.blocks))
	for i, b := range m.blocks {
		if cs[i] {
			outs[i] = b.Out(sub)
		} else {
			outs[i] = zero16
		}
	}
	return MuxWay(outs, sel)
}

// AddressWidth implements Block.
func (m *RAM) AddressWidth() int { return m.width }

// Size returns the number of words in m.
func (m *RAM) Size() int { return 1 << uint(m.width) }

func newCell() Block { return new(Cell) }

// NewRAM8 returns a 8 words RAM (3 bits address).
func NewRAM8() *RAM { return NewRAM(8, newCell) }

// NewRAM64 returns a 64 words RAM (6 bits address).
func NewRAM64() *RAM { return NewRAM(8, func() Block { return NewRAM8() }) }

// NewRAM512 returns a 512 words RAM (9 bits address).
func NewRAM512() *RAM { return NewRAM(8, func() Block { return NewRAM64() }) }

// NewRAM4K returns a 4096 words RAM (12 bits address).
func NewRAM4K() *RAM { return NewRAM(8, func() Block { return NewRAM512() }) }

// NewRAM8K returns a 8192 words RAM (13 bits address) made of two RAM4K.
func NewRAM8K() *RAM { return NewRAM(2, func() Block { return NewRAM4K() }) }

// NewRAM16K returns a 16384 words RAM (14 bits address) made of four RAM4K.
func NewRAM16K() *RAM { return NewRAM(4, func() Block { return NewRAM4K() }) }

// NewRAM32K returns a 32768 words RAM (15 bits address) made of eight RAM4K.
func NewRAM32K() *RAM { return NewRAM(8, func() Block { return NewRAM4K() }) }
