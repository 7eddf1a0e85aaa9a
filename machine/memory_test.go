package machine_test

import (
	"sync"
	"testing"

	"github.com/db47h/hack"
	"github.com/db47h/hack/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func store(m *machine.Memory, a, v int) hack.Word {
	m.Tick(w16(v), hack.Hi, addr(a), hack.Lo)
	return m.Tick(w16(v), hack.Hi, addr(a), hack.Hi)
}

func TestMemory_map(t *testing.T) {
	kbd := machine.NewKeyboard()
	m := machine.NewMemory(kbd)
	require.Equal(t, hack.AddressWidth, m.AddressWidth())

	td := []struct{ a, v int }{
		{machine.RAMBase, 1},
		{machine.RAMSize - 1, -2},
		{machine.ScreenBase, 3},
		{machine.KeyboardAddr - 1, -4},
		{1234, 5},
		{machine.ScreenBase + 1234, 6},
	}
	for _, d := range td {
		old := store(m, d.a, d.v)
		assert.Equal(t, 0, old.Int(), "previous value at %d", d.a)
	}
	for _, d := range td {
		assert.Equal(t, d.v, m.Out(addr(d.a)).Int(), "value at %d", d.a)
	}
	// screen words go to the screen block
	s := m.Screen()
	assert.Equal(t, 3, s.Word(0).Int())
	assert.Equal(t, 6, s.Word(1234).Int())
	assert.Equal(t, -4, s.Word(s.Size()-1).Int())
}

func TestMemory_keyboard(t *testing.T) {
	kbd := machine.NewKeyboard()
	m := machine.NewMemory(kbd)
	assert.Equal(t, 0, m.Out(addr(machine.KeyboardAddr)).Int())

	kbd.Press('K')
	assert.Equal(t, 75, m.Out(addr(machine.KeyboardAddr)).Int())
	// the whole upper quadrant decodes to the keyboard
	assert.Equal(t, 75, m.Out(addr(1<<hack.AddressWidth-1)).Int())

	// read only
	store(m, machine.KeyboardAddr, 1000)
	assert.Equal(t, 75, m.Out(addr(machine.KeyboardAddr)).Int())
	assert.Equal(t, 0, m.Out(addr(0)).Int())

	kbd.Press(machine.KeyF12)
	assert.Equal(t, 152, m.Out(addr(machine.KeyboardAddr)).Int())
	kbd.Release()
	assert.Equal(t, 0, m.Out(addr(machine.KeyboardAddr)).Int())
}

func TestKeyboard_concurrent(t *testing.T) {
	kbd := machine.NewKeyboard()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(code int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				kbd.Press(code)
				_ = kbd.Key()
				kbd.Release()
			}
		}('a' + i)
	}
	wg.Wait()
	assert.Equal(t, 0, kbd.Key().Int())
}

func TestScreen(t *testing.T) {
	s := machine.NewScreen()
	require.Equal(t, machine.ScreenWidth*machine.ScreenHeight/hack.WordWidth, s.Size())

	// pixel (x, y) is bit x%16 of word y*32 + x/16, from the lsb
	set := func(i, v int) {
		a := hack.FromInt(i, s.AddressWidth())
		s.Tick(w16(v), hack.Hi, a, hack.Hi)
	}
	set(0, 1)
	set(32*10+2, 1<<3|1<<15)
	assert.True(t, s.Pixel(0, 0))
	assert.False(t, s.Pixel(1, 0))
	assert.True(t, s.Pixel(32+3, 10))
	assert.True(t, s.Pixel(32+15, 10))
	assert.False(t, s.Pixel(32+4, 10))
	assert.False(t, s.Pixel(32+3, 11))

	assert.Panics(t, func() { s.Pixel(machine.ScreenWidth, 0) })
	assert.Panics(t, func() { s.Pixel(0, -1) })
	assert.Panics(t, func() { s.Word(s.Size()) })
}
