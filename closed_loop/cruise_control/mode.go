package cruise

import "fmt"

// Next computes the state that follows s for the given inputs and pre-step
// speeds. Guards are checked in priority order per state; when none matches
// the controller stays where it is.
func Next(s State, in Inputs, p SpeedPair) State {
	switch s {
	case Off:
		return nextFromOff(in)
	case Cruising:
		return nextFromCruising(in, p)
	case AutoAccelerating:
		return nextFromAutoAccelerating(in, p)
	case AutoDecelerating:
		return nextFromAutoDecelerating(in, p)
	case ManualOverrideAccelerating:
		return nextFromManualOverride(in)
	case Alerting:
		return nextFromAlerting(in)
	default:
		panic(fmt.Sprintf("cruise: no transitions for %v", s))
	}
}

func nextFromOff(in Inputs) State {
	if in.CruiseEnabled {
		return Cruising
	}
	return Off
}

func nextFromCruising(in Inputs, p SpeedPair) State {
	switch {
	case in.ApproachingObject && !in.Accelerator:
		return Alerting
	case in.TooClose:
		return AutoDecelerating
	case !in.CruiseEnabled:
		return Off
	case in.Brake:
		return Off
	case in.Accelerator:
		return ManualOverrideAccelerating
	case p.Current > p.Desired:
		return AutoDecelerating
	case p.Current < p.Desired:
		return AutoAccelerating
	default:
		return Cruising
	}
}

func nextFromAutoAccelerating(in Inputs, p SpeedPair) State {
	switch {
	case in.ApproachingObject:
		return Alerting
	case in.TooClose:
		return AutoDecelerating
	case !in.CruiseEnabled:
		return Off
	case in.Brake:
		return Off
	case in.Accelerator:
		return ManualOverrideAccelerating
	case p.Current >= p.Desired:
		return Cruising
	default:
		return AutoAccelerating
	}
}

func nextFromAutoDecelerating(in Inputs, p SpeedPair) State {
	switch {
	case in.ApproachingObject:
		return Alerting
	case in.Brake:
		return Off
	case !in.CruiseEnabled:
		return Off
	case in.Accelerator:
		return ManualOverrideAccelerating
	case !in.TooClose && p.Current < p.Desired:
		return Cruising
	case p.Current == p.Desired:
		return Cruising
	default:
		return AutoDecelerating
	}
}

func nextFromManualOverride(in Inputs) State {
	switch {
	case in.Brake:
		return Off
	case !in.CruiseEnabled:
		return Off
	case !in.Accelerator:
		return Cruising
	default:
		return ManualOverrideAccelerating
	}
}

// Alerting does not consult the cruise switch.
func nextFromAlerting(in Inputs) State {
	switch {
	case !in.ApproachingObject:
		return Cruising
	case in.Brake:
		return Off
	case in.Accelerator:
		return ManualOverrideAccelerating
	default:
		return Alerting
	}
}
