package hwlib_test

import (
	"testing"

	"github.com/db47h/hack"
	hl "github.com/db47h/hack/hwlib"
	"github.com/db47h/hack/hwtest"
)

// dmuxTable returns the truth table of a demultiplexer with a sel bits
// selector. The inputs are in, sel[0], ..., sel[n-1].
func dmuxTable(n int) [][]bool {
	ways := 1 << uint(n)
	res := make([][]bool, ways)
	for o := range res {
		res[o] = make([]bool, 2*ways)
		// in = 1: index ways + sel
		res[o][ways+o] = true
	}
	return res
}

func TestDMuxWays(t *testing.T) {
	hwtest.TruthTable(t, "DMux4Way", 3, func(in []hack.Signal) []hack.Signal {
		out := hl.DMux4Way(in[0], in[1:])
		return out[:]
	}, dmuxTable(2))
	hwtest.TruthTable(t, "DMux8Way", 4, func(in []hack.Signal) []hack.Signal {
		out := hl.DMux8Way(in[0], in[1:])
		return out[:]
	}, dmuxTable(3))
	hwtest.TruthTable(t, "DMuxWay/16", 5, func(in []hack.Signal) []hack.Signal {
		return hl.DMuxWay(in[0], in[1:])
	}, dmuxTable(4))
}

func TestMuxWays(t *testing.T) {
	var in [8]hack.Word
	for i := range in {
		in[i] = w16(1000 * (i + 1))
	}
	for i := 0; i < 8; i++ {
		sel := hack.FromInt(i, 3)
		if out := hl.Mux8Way16(in, sel); !out.Equal(in[i]) {
			t.Errorf("Mux8Way16 sel=%s: expected %d, got %d", sel, in[i].Int(), out.Int())
		}
		if i >= 4 {
			continue
		}
		sel = hack.FromInt(i, 2)
		if out := hl.Mux4Way16(in[0], in[1], in[2], in[3], sel); !out.Equal(in[i]) {
			t.Errorf("Mux4Way16 sel=%s: expected %d, got %d", sel, in[i].Int(), out.Int())
		}
	}

	// single bit words: MuxWay against a native multiplexer
	hwtest.ComparePart(t, 6,
		func(in []hack.Signal) []hack.Signal {
			return []hack.Signal{in[bits(in[4:])]}
		},
		func(in []hack.Signal) []hack.Signal {
			ws := make([]hack.Word, 4)
			for i := range ws {
				ws[i] = hack.Word{in[i]}
			}
			return hl.MuxWay(ws, in[4:])
		})

	expectPanic(t, "MuxWay", func() { hl.MuxWay(in[:3], hack.Zero(2)) })
	expectPanic(t, "Mux4Way16", func() { hl.Mux4Way16(in[0], in[1], in[2], in[3], hack.Zero(3)) })
	expectPanic(t, "DMuxWay", func() { hl.DMuxWay(hack.Hi, nil) })
}
