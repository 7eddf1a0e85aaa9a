package hwlib_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/hack"
	hl "github.com/db47h/hack/hwlib"
	"github.com/db47h/hack/hwtest"
)

func TestHalfAdder(t *testing.T) {
	hwtest.TruthTable(t, "HalfAdder", 2, func(in []hack.Signal) []hack.Signal {
		s, c := hl.HalfAdder(in[0], in[1])
		return []hack.Signal{s, c}
	}, [][]bool{
		{false, true, true, false},
		{false, false, false, true},
	})
}

func TestFullAdder(t *testing.T) {
	hwtest.ComparePart(t, 3,
		func(in []hack.Signal) []hack.Signal {
			n := 0
			for _, s := range in {
				if s {
					n++
				}
			}
			return []hack.Signal{n&1 != 0, n&2 != 0}
		},
		func(in []hack.Signal) []hack.Signal {
			s, c := hl.FullAdder(in[0], in[1], in[2])
			return []hack.Signal{s, c}
		})
}

func TestAdderN(t *testing.T) {
	hwtest.ComparePart(t, 8,
		func(in []hack.Signal) []hack.Signal {
			sum := bits(in[:4]) + bits(in[4:])
			return append([]hack.Signal(hack.FromInt(int(sum), 4)), sum&16 != 0)
		},
		func(in []hack.Signal) []hack.Signal {
			out, c := hl.AdderN(in[:4], in[4:])
			return append(out, c)
		})
}

func TestAdd16(t *testing.T) {
	if out := hl.Add16(w16(17), w16(-1)); out.Int() != 16 {
		t.Fatalf("17 + -1: expected 16, got %d", out.Int())
	}
	if out := hl.Add16(w16(32767), w16(1)); out.Int() != -32768 {
		t.Fatalf("32767 + 1: expected -32768, got %d", out.Int())
	}
	f := func(a, b int16) bool {
		return hl.Add16(w16(int(a)), w16(int(b))).Int() == int(a+b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestInc16(t *testing.T) {
	td := []struct{ in, out int }{
		{0, 1},
		{41, 42},
		{-1, 0},
		{32767, -32768},
		{-32768, -32767},
	}
	for _, d := range td {
		if out := hl.Inc16(w16(d.in)); out.Int() != d.out {
			t.Errorf("Inc16(%d): expected %d, got %d", d.in, d.out, out.Int())
		}
	}
	f := func(a int16) bool {
		return hl.Inc16(w16(int(a))).Int() == int(a+1)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
