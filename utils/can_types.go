package utils

import "sort"

// Frame directions as seen from this node.
const (
	DirectionRX = "rx"
	DirectionTX = "tx"
)

type SignalDef struct {
	Name       string
	StartBit   int
	BitLength  int
	Signed     bool
	Factor     float64
	Offset     float64
	Min        float64
	Max        float64
	Default    float64
	Unit       string
	Comment    string
	Endianness string // only "little" supported
}

type FrameDef struct {
	ID        uint32
	Name      string
	DLC       int
	Direction string
	CycleMS   int
	Signals   []SignalDef
}

// HasSignals reports whether every name is a signal of the frame.
func (fd *FrameDef) HasSignals(names ...string) bool {
	for _, n := range names {
		found := false
		for _, s := range fd.Signals {
			if s.Name == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type CANMap struct {
	ByID   map[uint32]*FrameDef
	ByName map[string]*FrameDef
}

func (m *CANMap) FrameNames() []string {
	out := make([]string, 0, len(m.ByName))
	for k := range m.ByName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
