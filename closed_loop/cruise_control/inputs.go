package cruise

// Inputs are the driver and sensor signals sampled for one step. They are
// not latched between steps.
type Inputs struct {
	Accelerator       bool `json:"accelerator"`
	Brake             bool `json:"brake"`
	CruiseEnabled     bool `json:"cruise_enabled"`
	IncrementRequest  bool `json:"increment_request"`
	DecrementRequest  bool `json:"decrement_request"`
	TooClose          bool `json:"too_close"`
	ApproachingObject bool `json:"approaching_object"`
}

// RawLines are the input line levels as sampled from hardware, true meaning
// high. CC, Add and Subtract are active low.
type RawLines struct {
	Accelerator       bool
	Brake             bool
	CC                bool
	Add               bool
	Subtract          bool
	TooClose          bool
	ApproachingObject bool
}

// Inputs normalizes the line levels into Inputs named for their effect.
func (r RawLines) Inputs() Inputs {
	return Inputs{
		Accelerator:       r.Accelerator,
		Brake:             r.Brake,
		CruiseEnabled:     !r.CC,
		IncrementRequest:  !r.Add,
		DecrementRequest:  !r.Subtract,
		TooClose:          r.TooClose,
		ApproachingObject: r.ApproachingObject,
	}
}

// Lines is the inverse of RawLines.Inputs.
func (in Inputs) Lines() RawLines {
	return RawLines{
		Accelerator:       in.Accelerator,
		Brake:             in.Brake,
		CC:                !in.CruiseEnabled,
		Add:               !in.IncrementRequest,
		Subtract:          !in.DecrementRequest,
		TooClose:          in.TooClose,
		ApproachingObject: in.ApproachingObject,
	}
}
