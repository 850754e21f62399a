package utils

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// GPIOPins maps each cruise input line to a BCM pin number.
type GPIOPins struct {
	Accelerator       int `json:"accelerator"`
	Brake             int `json:"brake"`
	CC                int `json:"cc"`
	Add               int `json:"add"`
	Subtract          int `json:"subtract"`
	TooClose          int `json:"too_close"`
	ApproachingObject int `json:"approaching_object"`
}

// DefaultGPIOPins is the bench wiring: one switch per line.
var DefaultGPIOPins = GPIOPins{
	Accelerator:       5,
	Brake:             6,
	CC:                13,
	Add:               19,
	Subtract:          26,
	TooClose:          20,
	ApproachingObject: 21,
}

// LineLevels are the sampled pin levels, true meaning high.
type LineLevels struct {
	Accelerator       bool
	Brake             bool
	CC                bool
	Add               bool
	Subtract          bool
	TooClose          bool
	ApproachingObject bool
}

// GPIOLines samples the input switches from the Raspberry Pi header.
type GPIOLines struct {
	pins GPIOPins
	open bool
}

func NewGPIOLines(pins GPIOPins) *GPIOLines {
	return &GPIOLines{pins: pins}
}

// Init maps GPIO memory and configures every pin as an input biased to its
// inactive level: active-high lines are pulled down, the active-low cc, add
// and subtract lines are pulled up.
func (g *GPIOLines) Init() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("failed opening rpio: %w", err)
	}
	g.open = true

	for _, p := range []int{g.pins.Accelerator, g.pins.Brake, g.pins.TooClose, g.pins.ApproachingObject} {
		pin := rpio.Pin(p)
		pin.Input()
		pin.PullDown()
	}
	for _, p := range []int{g.pins.CC, g.pins.Add, g.pins.Subtract} {
		pin := rpio.Pin(p)
		pin.Input()
		pin.PullUp()
	}
	return nil
}

// Read samples all lines back to back.
func (g *GPIOLines) Read() (LineLevels, error) {
	if !g.open {
		return LineLevels{}, fmt.Errorf("gpio lines not initialised")
	}
	return LineLevels{
		Accelerator:       high(g.pins.Accelerator),
		Brake:             high(g.pins.Brake),
		CC:                high(g.pins.CC),
		Add:               high(g.pins.Add),
		Subtract:          high(g.pins.Subtract),
		TooClose:          high(g.pins.TooClose),
		ApproachingObject: high(g.pins.ApproachingObject),
	}, nil
}

func (g *GPIOLines) Close() error {
	if !g.open {
		return nil
	}
	g.open = false
	if err := rpio.Close(); err != nil {
		return fmt.Errorf("failed closing rpio: %w", err)
	}
	return nil
}

func high(pin int) bool {
	return rpio.Pin(pin).Read() == rpio.High
}
