package cruise

import (
	"fmt"
	"strings"
)

// State is the active mode of the cruise controller. Exactly one is active at
// any time.
type State uint8

const (
	Off State = iota
	Cruising
	AutoAccelerating
	AutoDecelerating
	ManualOverrideAccelerating
	Alerting
)

// AllStates lists every state in declaration order.
var AllStates = []State{
	Off,
	Cruising,
	AutoAccelerating,
	AutoDecelerating,
	ManualOverrideAccelerating,
	Alerting,
}

var stateNames = map[State]string{
	Off:                        "OFF",
	Cruising:                   "CRUISING",
	AutoAccelerating:           "AUTO_ACCELERATING",
	AutoDecelerating:           "AUTO_DECELERATING",
	ManualOverrideAccelerating: "MANUAL_OVERRIDE_ACCELERATING",
	Alerting:                   "ALERTING",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Valid reports whether s is one of the six controller states.
func (s State) Valid() bool {
	return s <= Alerting
}

// Automatic reports whether the controller, not the driver, owns the speed.
func (s State) Automatic() bool {
	return s != Off && s != ManualOverrideAccelerating
}

// ParseState converts a state name into a State. Matching ignores case and
// treats '-' and ' ' like '_'.
func ParseState(value string) (State, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for s, name := range stateNames {
		if name == normalized {
			return s, nil
		}
	}
	return Off, fmt.Errorf("%w: %q", ErrUnknownState, value)
}
