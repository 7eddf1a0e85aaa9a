package machine_test

import (
	"testing"

	"github.com/db47h/hack"
	"github.com/db47h/hack/machine"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func w16(v int) hack.Word {
	return hack.FromInt(v, hack.WordWidth)
}

func addr(v int) hack.Word {
	return hack.FromInt(v, hack.AddressWidth)
}

func instr(t testing.TB, s string) hack.Word {
	t.Helper()
	w, err := hack.ParseWordN(s, hack.WordWidth)
	require.NoError(t, err)
	return w
}

// Add computes 2+3 and stores the result in RAM[0].
var progAdd = []string{
	"0000000000000010", // @2
	"1110110000010000", // D=A
	"0000000000000011", // @3
	"1110000010010000", // D=D+A
	"0000000000000000", // @0
	"1110001100001000", // M=D
}

func newComputer(t testing.TB, prog []string) (*machine.Computer, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	c := machine.NewComputer(machine.WithLogger(log))
	require.NoError(t, c.LoadStrings(prog))
	return c, hook
}
