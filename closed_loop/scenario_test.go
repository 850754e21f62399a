package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cruise "cruise-control-core/closed_loop/cruise_control"
)

func TestParseScenario(t *testing.T) {
	scen, err := ParseScenario([]byte(`{
		"meta": {"name": "t"},
		"timing": {"steps": 10},
		"controller": {"initial_state": "cruising", "initial_current_speed": 30, "initial_desired_speed": 30},
		"defaults": {"cruise_enabled": true},
		"segments": [
			{"from": 2, "to": 3, "inputs": {"accelerator": true, "cruise_enabled": true}},
			{"from": 3, "to": 5, "inputs": {"brake": true}},
			{"from": 8, "to": -1, "inputs": {"too_close": true}}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, defaultCycleMS, scen.Timing.CycleMS)

	assert.Equal(t, cruise.Inputs{CruiseEnabled: true}, EvalInputs(&scen, 1))
	assert.Equal(t, cruise.Inputs{Accelerator: true, CruiseEnabled: true}, EvalInputs(&scen, 3))
	assert.Equal(t, cruise.Inputs{Brake: true}, EvalInputs(&scen, 4))
	assert.Equal(t, cruise.Inputs{CruiseEnabled: true}, EvalInputs(&scen, 7))
	assert.Equal(t, cruise.Inputs{TooClose: true}, EvalInputs(&scen, 10))
}

func TestParseScenarioRejects(t *testing.T) {
	tests := map[string]string{
		"not json":       `{`,
		"no steps":       `{"timing": {"steps": 0}}`,
		"negative cycle": `{"timing": {"steps": 1, "cycle_ms": -5}}`,
		"bad state":      `{"timing": {"steps": 1}, "controller": {"initial_state": "reverse"}}`,
		"bad speed":      `{"timing": {"steps": 1}, "controller": {"initial_current_speed": 65}}`,
		"bad from":       `{"timing": {"steps": 1}, "segments": [{"from": 0, "to": 1}]}`,
		"reversed":       `{"timing": {"steps": 9}, "segments": [{"from": 5, "to": 2}]}`,
		"bad expect":     `{"timing": {"steps": 1}, "expect": {"state": "parked"}}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScenario([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestExpectationCheck(t *testing.T) {
	var none *Expectation
	assert.NoError(t, none.Check(cruise.Off, cruise.SpeedPair{}))

	speed := 40
	e := &Expectation{State: "cruising", CurrentSpeed: &speed}
	assert.NoError(t, e.Check(cruise.Cruising, cruise.SpeedPair{Current: 40, Desired: 12}))
	assert.Error(t, e.Check(cruise.Off, cruise.SpeedPair{Current: 40}))
	assert.Error(t, e.Check(cruise.Cruising, cruise.SpeedPair{Current: 39}))
}

func TestBundledScenariosLoad(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("scenarios", "*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, p := range paths {
		_, err := LoadScenario(p)
		assert.NoError(t, err, p)
	}

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
