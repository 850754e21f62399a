package cruise

import "fmt"

// Speed bounds shared by current and desired speed.
const (
	MinSpeed = 0
	MaxSpeed = 64
)

// SpeedPair is the vehicle's actual speed and the automatic controller's
// target. Both stay within [MinSpeed, MaxSpeed].
type SpeedPair struct {
	Current int `json:"current_speed"`
	Desired int `json:"desired_speed"`
}

// Validate returns ErrInvalidSpeed if either value is out of range.
func (p SpeedPair) Validate() error {
	if p.Current < MinSpeed || p.Current > MaxSpeed {
		return fmt.Errorf("%w: current_speed %d not in [%d, %d]", ErrInvalidSpeed, p.Current, MinSpeed, MaxSpeed)
	}
	if p.Desired < MinSpeed || p.Desired > MaxSpeed {
		return fmt.Errorf("%w: desired_speed %d not in [%d, %d]", ErrInvalidSpeed, p.Desired, MinSpeed, MaxSpeed)
	}
	return nil
}

func (p SpeedPair) clamped() SpeedPair {
	return SpeedPair{Current: ClampSpeed(p.Current), Desired: ClampSpeed(p.Desired)}
}

// Apply runs the speed model for one step. next is the state the controller
// has just moved to; the desired-speed drift is applied first and the
// state-keyed delta on current speed second.
func Apply(next State, in Inputs, p SpeedPair) SpeedPair {
	p = drift(in, p).clamped()

	switch next {
	case Off:
		// Both pedals together cancel out, except at MaxSpeed where only
		// the brake acts.
		if in.Accelerator && p.Current < MaxSpeed {
			p.Current++
		}
		if in.Brake && p.Current > MinSpeed {
			p.Current--
		}
		if !in.Accelerator && !in.Brake && p.Current > MinSpeed {
			// drag
			p.Current--
		}
		p.Desired = p.Current
	case Cruising:
	case AutoAccelerating:
		if p.Current < MaxSpeed {
			p.Current++
		}
	case AutoDecelerating, Alerting:
		if p.Current > MinSpeed {
			p.Current--
		}
	case ManualOverrideAccelerating:
		if in.Accelerator && p.Current < MaxSpeed {
			p.Current++
		}
	default:
		panic(fmt.Sprintf("cruise: speed model has no rule for %v", next))
	}

	return p.clamped()
}

// drift moves the desired speed by the increment and decrement requests.
// Increment is only honoured below MaxSpeed and decrement above MinSpeed,
// both judged on the current speed.
func drift(in Inputs, p SpeedPair) SpeedPair {
	if in.IncrementRequest && p.Current < MaxSpeed {
		p.Desired++
	}
	if in.DecrementRequest && p.Current > MinSpeed {
		p.Desired--
	}
	return p
}
