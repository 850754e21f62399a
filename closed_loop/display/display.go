// Package display encodes controller output for a two-by-two seven-segment
// panel and the status LEDs.
package display

import (
	"fmt"

	cruise "cruise-control-core/closed_loop/cruise_control"
)

// Segments is an active-low seven-segment code. Segment a is bit 6 and
// segment g is bit 0; a cleared bit lights the segment.
type Segments uint8

// Blank turns every segment off.
const Blank Segments = 0b1111111

var digits = [10]Segments{
	0b0000001,
	0b1001111,
	0b0010010,
	0b0000110,
	0b1001100,
	0b0100100,
	0b0100000,
	0b0001111,
	0b0000000,
	0b0000100,
}

// Digit returns the code for a decimal digit. It panics outside 0..9.
func Digit(d int) Segments {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("display: digit %d out of range", d))
	}
	return digits[d]
}

// Lit reports whether segment i (0 = a .. 6 = g) is lit.
func (s Segments) Lit(i int) bool {
	return s&(1<<(6-i)) == 0
}

func (s Segments) String() string {
	return fmt.Sprintf("%07b", uint8(s))
}

// Indicator bits.
const (
	IndicatorAuto  uint8 = 1 << 0
	IndicatorAlert uint8 = 1 << 1
)

// Panel is everything shown for one step.
type Panel struct {
	CurrentTens Segments
	CurrentOnes Segments
	DesiredTens Segments
	DesiredOnes Segments
	StateLEDs   uint8 // one-hot, Off = bit 0 .. Alerting = bit 5
	Indicators  uint8
}

// Encode renders speeds and state. The desired speed is blank while the
// controller is Off.
func Encode(state cruise.State, speeds cruise.SpeedPair) Panel {
	p := Panel{
		CurrentTens: Digit(speeds.Current / 10),
		CurrentOnes: Digit(speeds.Current % 10),
		DesiredTens: Blank,
		DesiredOnes: Blank,
		StateLEDs:   StateLEDs(state),
		Indicators:  IndicatorsFor(state),
	}
	if state != cruise.Off {
		p.DesiredTens = Digit(speeds.Desired / 10)
		p.DesiredOnes = Digit(speeds.Desired % 10)
	}
	return p
}

// StateLEDs returns the one-hot LED pattern for state.
func StateLEDs(state cruise.State) uint8 {
	if !state.Valid() {
		panic(fmt.Sprintf("display: invalid state %v", state))
	}
	return 1 << uint8(state)
}

// IndicatorsFor returns the 2-bit indicator pair: IndicatorAuto while the
// controller owns the speed and IndicatorAlert in Alerting.
func IndicatorsFor(state cruise.State) uint8 {
	var bits uint8
	if state.Automatic() {
		bits |= IndicatorAuto
	}
	if state == cruise.Alerting {
		bits |= IndicatorAlert
	}
	return bits
}
