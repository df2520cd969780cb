package metrics

import "github.com/san-kum/horizon/internal/sim"

// Captures reports how many particles ended up captured, and the tick
// of the first capture via FirstTick.
type Captures struct {
	count     int
	firstTick int
}

func NewCaptures() *Captures {
	return &Captures{firstTick: -1}
}

func (m *Captures) Name() string { return "captures" }

func (m *Captures) Observe(s sim.Snapshot) {
	n := s.Captures()
	if n > 0 && m.firstTick == -1 {
		m.firstTick = s.Tick
	}
	m.count = n
}

func (m *Captures) Value() float64 { return float64(m.count) }

// FirstTick returns the tick of the first observed capture, -1 if none.
func (m *Captures) FirstTick() int { return m.firstTick }

func (m *Captures) Reset() {
	m.count = 0
	m.firstTick = -1
}
