package main

import (
	"encoding/json"
	"fmt"
	"os"

	cruise "cruise-control-core/closed_loop/cruise_control"
)

// Scenario scripts the inputs of a simulated drive step by step
type Scenario struct {
	Meta       ScenarioMeta      `json:"meta"`
	Timing     ScenarioTiming    `json:"timing"`
	Controller cruise.Config     `json:"controller"`
	Defaults   cruise.Inputs     `json:"defaults"`
	Segments   []ScenarioSegment `json:"segments"`
	Expect     *Expectation      `json:"expect,omitempty"` // Optional end-of-run check
}

// ScenarioMeta contains scenario metadata
type ScenarioMeta struct {
	Name        string `json:"name"`
	Version     int    `json:"version"`
	Description string `json:"description"`
}

// ScenarioTiming defines timing parameters
type ScenarioTiming struct {
	CycleMS int `json:"cycle_ms"`
	Steps   int `json:"steps"`
}

// ScenarioSegment applies Inputs to steps From..To inclusive, counting from
// 1. A negative To runs to the end of the scenario.
type ScenarioSegment struct {
	From    int           `json:"from"`
	To      int           `json:"to"`
	Inputs  cruise.Inputs `json:"inputs"`
	Comment string        `json:"comment,omitempty"`
}

// Expectation is checked against the controller after the last step
type Expectation struct {
	State        string `json:"state"`
	CurrentSpeed *int   `json:"current_speed,omitempty"`
	DesiredSpeed *int   `json:"desired_speed,omitempty"`
}

const defaultCycleMS = 500

// LoadScenario loads a scenario from JSON file
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a scenario
func ParseScenario(data []byte) (Scenario, error) {
	var scen Scenario
	if err := json.Unmarshal(data, &scen); err != nil {
		return Scenario{}, fmt.Errorf("unmarshal: %w", err)
	}

	if scen.Timing.Steps <= 0 {
		return Scenario{}, fmt.Errorf("invalid steps: %d", scen.Timing.Steps)
	}
	if scen.Timing.CycleMS < 0 {
		return Scenario{}, fmt.Errorf("invalid cycle_ms: %d", scen.Timing.CycleMS)
	}
	if scen.Timing.CycleMS == 0 {
		scen.Timing.CycleMS = defaultCycleMS
	}

	if _, _, err := scen.Controller.Initial(); err != nil {
		return Scenario{}, fmt.Errorf("controller: %w", err)
	}

	for i, seg := range scen.Segments {
		if seg.From < 1 {
			return Scenario{}, fmt.Errorf("segment %d: invalid from %d", i, seg.From)
		}
		if seg.To >= 0 && seg.To < seg.From {
			return Scenario{}, fmt.Errorf("segment %d: to %d before from %d", i, seg.To, seg.From)
		}
	}

	if scen.Expect != nil && scen.Expect.State != "" {
		if _, err := cruise.ParseState(scen.Expect.State); err != nil {
			return Scenario{}, fmt.Errorf("expect: %w", err)
		}
	}

	return scen, nil
}

// EvalInputs returns the inputs for step (1-based): the first segment
// covering it, else the defaults
func EvalInputs(scen *Scenario, step int) cruise.Inputs {
	for _, seg := range scen.Segments {
		to := seg.To
		if to < 0 {
			to = scen.Timing.Steps
		}
		if step >= seg.From && step <= to {
			return seg.Inputs
		}
	}
	return scen.Defaults
}

// Check compares the controller with the expectation
func (e *Expectation) Check(state cruise.State, speeds cruise.SpeedPair) error {
	if e == nil {
		return nil
	}
	if e.State != "" {
		want, err := cruise.ParseState(e.State)
		if err != nil {
			return err
		}
		if state != want {
			return fmt.Errorf("expected state %v, got %v", want, state)
		}
	}
	if e.CurrentSpeed != nil && *e.CurrentSpeed != speeds.Current {
		return fmt.Errorf("expected current_speed %d, got %d", *e.CurrentSpeed, speeds.Current)
	}
	if e.DesiredSpeed != nil && *e.DesiredSpeed != speeds.Desired {
		return fmt.Errorf("expected desired_speed %d, got %d", *e.DesiredSpeed, speeds.Desired)
	}
	return nil
}
