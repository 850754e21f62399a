package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cruise "cruise-control-core/closed_loop/cruise_control"
)

func TestDigitSegments(t *testing.T) {
	// segments a..g lit per digit
	lit := map[int]string{
		0: "abcdef",
		1: "bc",
		2: "abdeg",
		3: "abcdg",
		4: "bcfg",
		5: "acdfg",
		6: "acdefg",
		7: "abc",
		8: "abcdefg",
		9: "abcdfg",
	}
	for d, want := range lit {
		s := Digit(d)
		got := ""
		for i := 0; i < 7; i++ {
			if s.Lit(i) {
				got += string(rune('a' + i))
			}
		}
		assert.Equal(t, want, got, "digit %d (%v)", d, s)
	}

	assert.Panics(t, func() { Digit(10) })
	for i := 0; i < 7; i++ {
		assert.False(t, Blank.Lit(i))
	}
}

func TestEncode(t *testing.T) {
	p := Encode(cruise.Cruising, cruise.SpeedPair{Current: 47, Desired: 60})
	assert.Equal(t, Digit(4), p.CurrentTens)
	assert.Equal(t, Digit(7), p.CurrentOnes)
	assert.Equal(t, Digit(6), p.DesiredTens)
	assert.Equal(t, Digit(0), p.DesiredOnes)
	assert.Equal(t, uint8(0b000010), p.StateLEDs)
	assert.Equal(t, IndicatorAuto, p.Indicators)

	p = Encode(cruise.Off, cruise.SpeedPair{Current: 5, Desired: 5})
	assert.Equal(t, Digit(0), p.CurrentTens)
	assert.Equal(t, Digit(5), p.CurrentOnes)
	assert.Equal(t, Blank, p.DesiredTens)
	assert.Equal(t, Blank, p.DesiredOnes)
	assert.Equal(t, uint8(0b000001), p.StateLEDs)
	assert.Zero(t, p.Indicators)
}

func TestStatusLEDs(t *testing.T) {
	want := map[cruise.State]struct {
		leds       uint8
		indicators uint8
	}{
		cruise.Off:                        {0b000001, 0b00},
		cruise.Cruising:                   {0b000010, 0b01},
		cruise.AutoAccelerating:           {0b000100, 0b01},
		cruise.AutoDecelerating:           {0b001000, 0b01},
		cruise.ManualOverrideAccelerating: {0b010000, 0b00},
		cruise.Alerting:                   {0b100000, 0b11},
	}
	for _, s := range cruise.AllStates {
		assert.Equal(t, want[s].leds, StateLEDs(s), "%v", s)
		assert.Equal(t, want[s].indicators, IndicatorsFor(s), "%v", s)
	}
	assert.Panics(t, func() { StateLEDs(cruise.State(6)) })
}
