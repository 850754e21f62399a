package cruise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	for _, s := range AllStates {
		got, err := ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseState(" manual override-accelerating ")
	require.NoError(t, err)
	assert.Equal(t, ManualOverrideAccelerating, got)

	_, err = ParseState("ACCELb")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestStateAutomatic(t *testing.T) {
	assert.False(t, Off.Automatic())
	assert.False(t, ManualOverrideAccelerating.Automatic())
	for _, s := range []State{Cruising, AutoAccelerating, AutoDecelerating, Alerting} {
		assert.True(t, s.Automatic(), "%v", s)
	}
	assert.Equal(t, "State(7)", State(7).String())
	assert.False(t, State(7).Valid())
}

func TestRawLinesPolarity(t *testing.T) {
	idle := RawLines{CC: true, Add: true, Subtract: true}
	assert.Equal(t, Inputs{}, idle.Inputs())

	in := RawLines{Accelerator: true, TooClose: true}.Inputs()
	assert.True(t, in.CruiseEnabled)
	assert.True(t, in.IncrementRequest)
	assert.True(t, in.DecrementRequest)
	assert.True(t, in.Accelerator)
	assert.True(t, in.TooClose)
	assert.False(t, in.Brake)

	for mask := 0; mask < 1<<7; mask++ {
		in := inputsFromMask(mask)
		assert.Equal(t, in, in.Lines().Inputs())
	}
}
