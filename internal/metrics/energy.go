// Package metrics provides per-run scalar metrics computed from
// simulation snapshots.
package metrics

import (
	"math"

	"github.com/san-kum/horizon/internal/field"
	"github.com/san-kum/horizon/internal/sim"
)

// EnergyDrift tracks the worst relative drift of mechanical energy
// across massive particles. Photons are excluded (the speed clamp
// injects and removes kinetic energy every step) and so are captured
// particles, whose state is frozen.
//
// Explicit Euler does not conserve energy; the value here is a
// regression bound that shrinks with dt, not a conservation check.
type EnergyDrift struct {
	body     *field.Body
	initial  []float64
	maxDrift float64
}

func NewEnergyDrift(body *field.Body) *EnergyDrift {
	return &EnergyDrift{body: body}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s sim.Snapshot) {
	if e.initial == nil {
		e.initial = make([]float64, len(s.Particles))
		for i, p := range s.Particles {
			e.initial[i] = e.energy(p)
		}
	}

	for i, p := range s.Particles {
		if p.Photon || p.Captured || i >= len(e.initial) {
			continue
		}
		e0 := e.initial[i]
		if e0 == 0 {
			continue
		}
		drift := math.Abs(e.energy(p)-e0) / math.Abs(e0)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) energy(p sim.ParticleView) float64 {
	ke := 0.5 * p.Mass * p.Vel.LenSqr()
	r := p.Pos.Sub(e.body.Pos).Len()
	if r == 0 {
		return ke
	}
	return ke - e.body.G*e.body.M*p.Mass/r
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = nil
	e.maxDrift = 0
}
