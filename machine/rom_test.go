package machine_test

import (
	"strings"
	"testing"

	"github.com/db47h/hack"
	"github.com/db47h/hack/machine"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROM_load(t *testing.T) {
	r := machine.NewROM()
	require.NoError(t, r.LoadStrings(progAdd))
	assert.Equal(t, len(progAdd), r.Len())
	for i, s := range progAdd {
		assert.Equal(t, s, r.Fetch(addr(i)).String())
	}
	assert.Equal(t, 0, r.Fetch(addr(len(progAdd))).Int())
	assert.Equal(t, 0, r.Fetch(addr(machine.ROMSize-1)).Int())

	// a new program replaces everything
	require.NoError(t, r.Load([]hack.Word{w16(7)}))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 7, r.Fetch(addr(0)).Int())
	assert.Equal(t, 0, r.Fetch(addr(1)).Int())
}

func TestROM_errors(t *testing.T) {
	r := machine.NewROM()
	require.NoError(t, r.LoadStrings(progAdd))

	err := r.LoadStrings([]string{"0000000000000000", "00000000000000x0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instruction 1")
	assert.IsType(t, (*hack.FormatError)(nil), errors.Cause(err))

	err = r.LoadStrings([]string{"0101"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instruction 0")

	err = r.Load([]hack.Word{w16(1), hack.Zero(8)})
	require.Error(t, err)
	assert.IsType(t, (*hack.WidthError)(nil), errors.Cause(err))

	big := make([]string, machine.ROMSize+1)
	for i := range big {
		big[i] = strings.Repeat("0", hack.WordWidth)
	}
	assert.Error(t, r.LoadStrings(big))

	// failed loads leave the previous program in place
	assert.Equal(t, len(progAdd), r.Len())
	assert.Equal(t, progAdd[0], r.Fetch(addr(0)).String())
}
