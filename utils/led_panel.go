package utils

import (
	"fmt"
	"io"

	"github.com/googolgl/go-i2c"
	"github.com/googolgl/go-pca9685"
)

const (
	DefaultLEDAddress   = 0x40
	DefaultLEDI2CDevice = "/dev/i2c-1"

	// PCA9685 channels 0..5 carry the one-hot state LEDs, 6 and 7 the
	// indicator pair.
	StateLEDChannels = 6
)

// LEDPanel drives the status LEDs through a PCA9685 PWM controller. Each
// channel is switched fully on or fully off.
type LEDPanel struct {
	address byte
	device  string
	bus     io.Closer
	driver  *pca9685.PCA9685
	last    uint16
	valid   bool
}

func NewLEDPanel(address byte, device string) *LEDPanel {
	return &LEDPanel{address: address, device: device}
}

func (p *LEDPanel) Init() error {
	bus, err := i2c.New(p.address, p.device)
	if err != nil {
		return fmt.Errorf("error starting i2c with address - %w", err)
	}
	p.bus = bus

	p.driver, err = pca9685.New(bus, nil)
	if err != nil {
		return fmt.Errorf("error getting led driver - %w", err)
	}
	return p.Show(0, 0)
}

// Show lights the state LEDs from a one-hot pattern and the two indicator
// LEDs from the low bits of indicators. Unchanged patterns are not resent.
func (p *LEDPanel) Show(stateLEDs, indicators uint8) error {
	if p.driver == nil {
		return fmt.Errorf("led panel not initialised")
	}

	pattern := uint16(stateLEDs&0x3F) | uint16(indicators&0x3)<<StateLEDChannels
	if p.valid && pattern == p.last {
		return nil
	}

	for ch := 0; ch < StateLEDChannels+2; ch++ {
		var err error
		if pattern&(1<<ch) != 0 {
			err = p.driver.SetChannel(ch, 4096, 0)
		} else {
			err = p.driver.SetChannel(ch, 0, 4096)
		}
		if err != nil {
			p.valid = false
			return fmt.Errorf("failed setting led channel %d - %w", ch, err)
		}
	}
	p.last = pattern
	p.valid = true
	return nil
}

func (p *LEDPanel) Close() error {
	if p.driver != nil {
		_ = p.Show(0, 0)
	}
	if p.bus != nil {
		return p.bus.Close()
	}
	return nil
}
