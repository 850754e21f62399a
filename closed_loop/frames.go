package main

import (
	"fmt"

	cruise "cruise-control-core/closed_loop/cruise_control"
	"cruise-control-core/closed_loop/display"
	"cruise-control-core/utils"
)

var inputSignals = []string{"accelerator", "brake", "cc", "add", "subtract", "too_close", "approaching_object"}

var statusSignals = []string{
	"current_speed", "desired_speed", "state", "state_leds", "indicators",
	"seg_current_tens", "seg_current_ones", "seg_desired_tens", "seg_desired_ones",
}

// checkFrames makes sure the CAN map carries the signals the runner reads
// and writes.
func checkFrames(cmap *utils.CANMap, rxFrame, txFrame string) error {
	if rxFrame != "" {
		fd, err := cmap.FrameByName(rxFrame)
		if err != nil {
			return fmt.Errorf("rx frame: %w", err)
		}
		if fd.Direction != utils.DirectionRX {
			return fmt.Errorf("rx frame %s has direction %q", fd.Name, fd.Direction)
		}
		if !fd.HasSignals(inputSignals...) {
			return fmt.Errorf("rx frame %s lacks input signals %v", fd.Name, inputSignals)
		}
	}
	if txFrame != "" {
		fd, err := cmap.FrameByName(txFrame)
		if err != nil {
			return fmt.Errorf("tx frame: %w", err)
		}
		if fd.Direction != utils.DirectionTX {
			return fmt.Errorf("tx frame %s has direction %q", fd.Name, fd.Direction)
		}
		if !fd.HasSignals(statusSignals...) {
			return fmt.Errorf("tx frame %s lacks status signals %v", fd.Name, statusSignals)
		}
	}
	return nil
}

// linesFromSignals reads decoded input frame values as line levels; any
// nonzero value is high.
func linesFromSignals(values map[string]float64) cruise.RawLines {
	return cruise.RawLines{
		Accelerator:       values["accelerator"] != 0,
		Brake:             values["brake"] != 0,
		CC:                values["cc"] != 0,
		Add:               values["add"] != 0,
		Subtract:          values["subtract"] != 0,
		TooClose:          values["too_close"] != 0,
		ApproachingObject: values["approaching_object"] != 0,
	}
}

func signalsFromLines(l cruise.RawLines) map[string]float64 {
	return map[string]float64{
		"accelerator":        cruise.BoolToFloat(l.Accelerator),
		"brake":              cruise.BoolToFloat(l.Brake),
		"cc":                 cruise.BoolToFloat(l.CC),
		"add":                cruise.BoolToFloat(l.Add),
		"subtract":           cruise.BoolToFloat(l.Subtract),
		"too_close":          cruise.BoolToFloat(l.TooClose),
		"approaching_object": cruise.BoolToFloat(l.ApproachingObject),
	}
}

func statusValues(st Status) map[string]float64 {
	return map[string]float64{
		"current_speed":    float64(st.Result.Speeds.Current),
		"desired_speed":    float64(st.Result.Speeds.Desired),
		"state":            float64(st.Result.To),
		"state_leds":       float64(st.Panel.StateLEDs),
		"indicators":       float64(st.Panel.Indicators),
		"seg_current_tens": float64(st.Panel.CurrentTens),
		"seg_current_ones": float64(st.Panel.CurrentOnes),
		"seg_desired_tens": float64(st.Panel.DesiredTens),
		"seg_desired_ones": float64(st.Panel.DesiredOnes),
	}
}

// Status is what the runner publishes after every step.
type Status struct {
	Result cruise.StepResult
	Panel  display.Panel
}

func newStatus(res cruise.StepResult) Status {
	return Status{Result: res, Panel: display.Encode(res.To, res.Speeds)}
}
