package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/hack/machine"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProgram(t *testing.T) {
	name := filepath.Join(t.TempDir(), "add.hack")
	src := "// 2+3\n0000000000000010\n\n  1110110000010000  \n"
	require.NoError(t, os.WriteFile(name, []byte(src), 0o644))
	prog, err := readProgram(name)
	require.NoError(t, err)
	assert.Equal(t, []string{"0000000000000010", "1110110000010000"}, prog)

	_, err = readProgram(filepath.Join(t.TempDir(), "missing.hack"))
	assert.Error(t, err)
}

func TestNewDump(t *testing.T) {
	log, _ := test.NewNullLogger()
	c := machine.NewComputer(machine.WithLogger(log))
	require.NoError(t, c.LoadStrings([]string{
		"0000000000000010", // @2
		"1110110000010000", // D=A
		"0000000000000000", // @0
		"1110001100001000", // M=D
	}))
	require.NoError(t, c.Run(4))

	d := newDump(c, 16, func() (int, int, error) { return 120, 40, nil })
	require.NotNil(t, d.Terminal)
	assert.Equal(t, Terminal{Width: 120, Height: 40}, *d.Terminal)
	assert.Equal(t, map[int]int{0: 2}, d.Machine.RAM)
	assert.Equal(t, 2, d.Machine.D)

	d = newDump(c, 16, func() (int, int, error) { return 0, 0, errors.New("not a terminal") })
	assert.Nil(t, d.Terminal)
	assert.Equal(t, uint64(4), d.Machine.Cycles)
}
