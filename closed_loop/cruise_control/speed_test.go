package cruise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStateDeltas(t *testing.T) {
	tests := []struct {
		name  string
		state State
		in    Inputs
		from  SpeedPair
		want  SpeedPair
	}{
		{"off gas", Off, Inputs{Accelerator: true}, SpeedPair{10, 30}, SpeedPair{11, 11}},
		{"off gas at max", Off, Inputs{Accelerator: true}, SpeedPair{64, 64}, SpeedPair{64, 64}},
		{"off brake", Off, Inputs{Brake: true}, SpeedPair{10, 10}, SpeedPair{9, 9}},
		{"off brake at zero", Off, Inputs{Brake: true}, SpeedPair{0, 0}, SpeedPair{0, 0}},
		{"off drag", Off, Inputs{}, SpeedPair{10, 10}, SpeedPair{9, 9}},
		{"off drag at zero", Off, Inputs{}, SpeedPair{0, 0}, SpeedPair{0, 0}},
		{"off both pedals", Off, Inputs{Accelerator: true, Brake: true}, SpeedPair{10, 10}, SpeedPair{10, 10}},
		{"off both pedals at max", Off, Inputs{Accelerator: true, Brake: true}, SpeedPair{64, 64}, SpeedPair{63, 63}},

		{"cruising holds", Cruising, Inputs{Accelerator: true, Brake: true}, SpeedPair{30, 40}, SpeedPair{30, 40}},

		{"auto accel", AutoAccelerating, Inputs{}, SpeedPair{30, 40}, SpeedPair{31, 40}},
		{"auto accel capped", AutoAccelerating, Inputs{}, SpeedPair{64, 64}, SpeedPair{64, 64}},

		{"auto decel", AutoDecelerating, Inputs{Accelerator: true}, SpeedPair{30, 20}, SpeedPair{29, 20}},
		{"auto decel floored", AutoDecelerating, Inputs{}, SpeedPair{0, 0}, SpeedPair{0, 0}},

		{"override with gas", ManualOverrideAccelerating, Inputs{Accelerator: true}, SpeedPair{30, 30}, SpeedPair{31, 30}},
		{"override without gas", ManualOverrideAccelerating, Inputs{}, SpeedPair{30, 30}, SpeedPair{30, 30}},
		{"override at max", ManualOverrideAccelerating, Inputs{Accelerator: true}, SpeedPair{64, 50}, SpeedPair{64, 50}},

		{"alert decel with gas", Alerting, Inputs{Accelerator: true}, SpeedPair{30, 30}, SpeedPair{29, 30}},
		{"alert floored", Alerting, Inputs{}, SpeedPair{0, 10}, SpeedPair{0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.state, tt.in, tt.from))
		})
	}
}

func TestApplyDesiredDrift(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		from SpeedPair
		want SpeedPair
	}{
		{"increment", Inputs{IncrementRequest: true}, SpeedPair{30, 30}, SpeedPair{30, 31}},
		{"decrement", Inputs{DecrementRequest: true}, SpeedPair{30, 30}, SpeedPair{30, 29}},
		{"both cancel", Inputs{IncrementRequest: true, DecrementRequest: true}, SpeedPair{30, 30}, SpeedPair{30, 30}},
		{"increment clamps", Inputs{IncrementRequest: true}, SpeedPair{30, 64}, SpeedPair{30, 64}},
		{"decrement clamps", Inputs{DecrementRequest: true}, SpeedPair{30, 0}, SpeedPair{30, 0}},
		{"increment held off at max current", Inputs{IncrementRequest: true}, SpeedPair{64, 40}, SpeedPair{64, 40}},
		{"decrement held off at zero current", Inputs{DecrementRequest: true}, SpeedPair{0, 40}, SpeedPair{0, 40}},
		{"both at zero current", Inputs{IncrementRequest: true, DecrementRequest: true}, SpeedPair{0, 40}, SpeedPair{0, 41}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(Cruising, tt.in, tt.from))
		})
	}
}

// Drift happens before the state delta, so an increment while Off is
// overwritten by the mirrored current speed.
func TestApplyOffOverridesDrift(t *testing.T) {
	got := Apply(Off, Inputs{IncrementRequest: true, Accelerator: true}, SpeedPair{10, 10})
	assert.Equal(t, SpeedPair{11, 11}, got)
}

func TestApplyPanicsOnUnknownState(t *testing.T) {
	assert.Panics(t, func() { Apply(State(9), Inputs{}, SpeedPair{}) })
}

func TestSpeedPairValidate(t *testing.T) {
	require.NoError(t, SpeedPair{0, 64}.Validate())

	for _, p := range []SpeedPair{{-1, 0}, {65, 0}, {0, -1}, {0, 65}} {
		err := p.Validate()
		require.Error(t, err, "%+v", p)
		assert.True(t, errors.Is(err, ErrInvalidSpeed))
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 0, ClampSpeed(-5))
	assert.Equal(t, 17, ClampSpeed(17))
	assert.Equal(t, 64, ClampSpeed(127))
}
