package cruise

import (
	"fmt"

	"github.com/google/uuid"
)

// Controller owns one cruise-control state and speed pair. Instances are
// independent; a Controller is not safe for concurrent use.
type Controller struct {
	id     uuid.UUID
	state  State
	speeds SpeedPair
	steps  uint64
}

// StepResult describes one evaluated step.
type StepResult struct {
	Step   uint64
	From   State
	To     State
	Speeds SpeedPair
}

// Changed reports whether the step moved the controller to another state.
func (r StepResult) Changed() bool {
	return r.From != r.To
}

// NewController creates a controller in its reset condition: Off, 0/0.
func NewController() *Controller {
	return &Controller{id: uuid.New()}
}

// NewControllerAt creates a controller starting from the given state and
// speeds. It panics if either is outside the controller's domain.
func NewControllerAt(state State, speeds SpeedPair) *Controller {
	if !state.Valid() {
		panic(fmt.Sprintf("cruise: invalid initial state %v", state))
	}
	if err := speeds.Validate(); err != nil {
		panic("cruise: " + err.Error())
	}
	c := NewController()
	c.state = state
	c.speeds = speeds
	return c
}

// NewControllerFromConfig validates cfg and creates a controller from it.
func NewControllerFromConfig(cfg Config) (*Controller, error) {
	state, speeds, err := cfg.Initial()
	if err != nil {
		return nil, err
	}
	return NewControllerAt(state, speeds), nil
}

// Step evaluates one tick. The transition is computed from the pre-step
// state and speeds; the speed model then runs keyed by the new state.
func (c *Controller) Step(in Inputs) StepResult {
	from := c.state
	to := Next(from, in, c.speeds)

	c.speeds = Apply(to, in, c.speeds)
	c.state = to
	c.steps++

	return StepResult{
		Step:   c.steps,
		From:   from,
		To:     to,
		Speeds: c.speeds,
	}
}

// Reset returns the controller to Off with both speeds at zero and clears
// the step count. The instance ID survives a reset.
func (c *Controller) Reset() {
	c.state = Off
	c.speeds = SpeedPair{}
	c.steps = 0
}

func (c *Controller) ID() uuid.UUID     { return c.id }
func (c *Controller) State() State      { return c.state }
func (c *Controller) Speeds() SpeedPair { return c.speeds }

// GetDiagnostics returns the controller state for logging/debugging
func (c *Controller) GetDiagnostics() Diagnostics {
	return Diagnostics{
		ID:         c.id.String(),
		State:      c.state,
		Speeds:     c.speeds,
		Steps:      c.steps,
		AutoActive: c.state.Automatic(),
		Alert:      c.state == Alerting,
		SpeedError: c.speeds.Desired - c.speeds.Current,
	}
}

// Diagnostics contains controller state for monitoring
type Diagnostics struct {
	ID         string
	State      State
	Speeds     SpeedPair
	Steps      uint64
	AutoActive bool
	Alert      bool
	SpeedError int // desired - current
}
