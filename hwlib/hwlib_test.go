package hwlib_test

import (
	"math/rand"

	"github.com/db47h/hack"
	"github.com/db47h/hack/hwtest"
)

func randBool() hack.Signal {
	return rand.Int63()&(1<<62) != 0
}

func w16(v int) hack.Word {
	return hack.FromInt(v, hack.WordWidth)
}

// gate1 and gate2 wrap single output gates as test parts.
func gate1(fn func(hack.Signal) hack.Signal) hwtest.Part {
	return func(in []hack.Signal) []hack.Signal {
		return []hack.Signal{fn(in[0])}
	}
}

func gate2(fn func(a, b hack.Signal) hack.Signal) hwtest.Part {
	return func(in []hack.Signal) []hack.Signal {
		return []hack.Signal{fn(in[0], in[1])}
	}
}

// bits returns the first n bits of in as an unsigned value, in[0] being the
// most significant bit.
func bits(in []hack.Signal) uint {
	return hack.Word(in).Uint()
}

// expectPanic calls fn and reports an error if it does not panic.
func expectPanic(t interface {
	Helper()
	Errorf(string, ...interface{})
}, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
