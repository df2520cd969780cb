package sim

import "github.com/go-gl/mathgl/mgl64"

// ParticleView is the read-only per-particle state handed to sinks
// each tick. The path slice is a copy; consumers may retain it.
type ParticleView struct {
	Pos      mgl64.Vec2
	Vel      mgl64.Vec2
	Mass     float64
	Photon   bool
	Captured bool
	Path     []mgl64.Vec2
}

// Snapshot is the full simulation state after one tick.
type Snapshot struct {
	Tick      int
	Time      float64
	Body      mgl64.Vec2
	Rs        float64
	Particles []ParticleView
}

// Captures counts particles marked captured in the snapshot.
func (s Snapshot) Captures() int {
	n := 0
	for _, p := range s.Particles {
		if p.Captured {
			n++
		}
	}
	return n
}

// Sink consumes per-tick snapshots. Sinks are pure consumers and must
// not mutate driver state.
type Sink interface {
	OnTick(s Snapshot)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

// Result summarizes a completed (or canceled) run.
type Result struct {
	Ticks   int
	Final   Snapshot
	Metrics map[string]float64
}
