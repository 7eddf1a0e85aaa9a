// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing parts.
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/hack"
)

// A Part wraps a combinational part for testing: it maps a flat list of
// input signals to a flat list of output signals.
type Part func(in []hack.Signal) []hack.Signal

func inputString(inputs []hack.Signal) string {
	var b strings.Builder
	for i, s := range inputs {
		if i > 0 && i%4 == 0 {
			b.WriteRune('_')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// TruthTable evaluates part for all 2^inputs input combinations and checks
// its outputs against result, where result[o][i] is the expected value of
// output o for combination i. The first input is the most significant bit
// of i.
func TruthTable(t *testing.T, name string, inputs int, part Part, result [][]bool) {
	t.Helper()
	in := make([]hack.Signal, inputs)
	tot := 1 << uint(inputs)
	for i := 0; i < tot; i++ {
		for bit := range in {
			in[len(in)-bit-1] = i&(1<<uint(bit)) != 0
		}
		outs := part(in)
		if len(outs) != len(result) {
			t.Fatalf("%s: got %d outputs, expected %d", name, len(outs), len(result))
		}
		for o, out := range outs {
			if exp := hack.Signal(result[o][i]); exp != out {
				t.Errorf("%s %s: out[%d] = %v, got %v", name, inputString(in), o, exp, out)
			}
		}
	}
}

// ComparePart takes two parts and compares their outputs given the same
// inputs: all 0, all 1, then random inputs. Exhaustive testing is used for
// parts with no more than 12 inputs.
func ComparePart(t *testing.T, inputs int, part1, part2 Part) {
	t.Helper()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	in := make([]hack.Signal, inputs)

	check := func() {
		t.Helper()
		o1, o2 := part1(in), part2(in)
		if len(o1) != len(o2) {
			t.Fatalf("output count mismatch: %d != %d", len(o1), len(o2))
		}
		for o := range o1 {
			if o1[o] != o2[o] {
				t.Fatalf("\nInputs %s\nExpected out[%d]=%v\nGot %v", inputString(in), o, o1[o], o2[o])
			}
		}
	}

	start := time.Now()
	evals := 0

	// try all 0
	check()
	// try all 1
	for i := range in {
		in[i] = hack.Hi
	}
	check()
	evals += 2

	if inputs <= 12 {
		for i := 0; i < 1<<uint(inputs); i++ {
			for bit := range in {
				in[len(in)-bit-1] = i&(1<<uint(bit)) != 0
			}
			check()
			evals++
		}
	} else {
		for i := 0; i < 1<<12; i++ {
			for bit := range in {
				in[bit] = rnd.Int63()&(1<<62) != 0
			}
			check()
			evals++
		}
	}

	elapsed := time.Since(start)
	t.Logf("%d evaluations in %v => %.2f Hz", evals, elapsed, float64(evals)/(float64(elapsed)/float64(time.Second)))
}
