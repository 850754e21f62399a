package cruise

// Config holds the starting condition of a controller. The zero value is the
// reset condition.
type Config struct {
	InitialState        string `json:"initial_state,omitempty"`
	InitialCurrentSpeed int    `json:"initial_current_speed"`
	InitialDesiredSpeed int    `json:"initial_desired_speed"`
}

// Initial validates the config and returns the state and speeds it names.
// An empty InitialState means Off, and an Off controller starts with the
// desired speed mirroring the current one.
func (cfg Config) Initial() (State, SpeedPair, error) {
	state := Off
	if cfg.InitialState != "" {
		s, err := ParseState(cfg.InitialState)
		if err != nil {
			return Off, SpeedPair{}, err
		}
		state = s
	}

	speeds := SpeedPair{Current: cfg.InitialCurrentSpeed, Desired: cfg.InitialDesiredSpeed}
	if err := speeds.Validate(); err != nil {
		return Off, SpeedPair{}, err
	}
	if state == Off && speeds.Desired != speeds.Current {
		speeds.Desired = speeds.Current
	}
	return state, speeds, nil
}
