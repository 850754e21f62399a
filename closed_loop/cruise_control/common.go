package cruise

import "errors"

var (
	ErrUnknownState = errors.New("unknown controller state")
	ErrInvalidSpeed = errors.New("speed out of range")
)

// ClampSpeed clamps value between MinSpeed and MaxSpeed
func ClampSpeed(value int) int {
	if value < MinSpeed {
		return MinSpeed
	}
	if value > MaxSpeed {
		return MaxSpeed
	}
	return value
}

// BoolToFloat converts bool to float64 (for CAN encoding)
func BoolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
