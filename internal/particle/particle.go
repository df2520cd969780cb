// Package particle implements the point particles integrated under a
// fixed gravitating body: massive tracers and photon-flagged particles
// whose speed is clamped to the field's C after every velocity update.
package particle

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/horizon/internal/field"
)

// Particle owns its kinematic state and full position history. A
// particle is inert once Captured is set; the flag is one-way.
type Particle struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2

	// Mass only enters the force computation for massive particles and
	// cancels out of the acceleration. Kept for future multi-mass use.
	Mass float64

	Photon   bool
	Captured bool

	// Path starts with the initial position and grows by exactly one
	// entry per executed step. Never trimmed or reordered.
	Path []mgl64.Vec2
}

// New returns an active particle with unit mass and its path seeded
// with the initial position.
func New(pos, vel mgl64.Vec2, photon bool) *Particle {
	return &Particle{
		Pos:    pos,
		Vel:    vel,
		Mass:   1.0,
		Photon: photon,
		Path:   []mgl64.Vec2{pos},
	}
}

// Step advances the particle by one explicit-Euler step of size dt
// under b's field: the acceleration G*M/r^2 is evaluated at the
// pre-step position, then velocity and position are advanced in that
// order. First-order energy drift is an accepted property of the
// method.
//
// Captured particles do not move. A particle exactly coincident with
// the body (r == 0) skips the step entirely rather than dividing by
// zero: no force, no position change, no path entry.
func (p *Particle) Step(dt float64, b *field.Body) {
	if p.Captured {
		return
	}

	rVec := b.Pos.Sub(p.Pos)
	rMag := rVec.Len()
	if rMag == 0 {
		return
	}

	accel := b.G * b.M / (rMag * rMag)
	p.Vel = p.Vel.Add(rVec.Mul(accel * dt / rMag))

	// Photons keep constant speed C; gravity only bends their
	// direction. An approximation of light bending, not a geodesic.
	if p.Photon {
		p.Vel = p.Vel.Normalize().Mul(b.C)
	}

	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Path = append(p.Path, p.Pos)
}

// Speed returns the current speed.
func (p *Particle) Speed() float64 { return p.Vel.Len() }

// DistanceTo returns the distance from the particle to pos.
func (p *Particle) DistanceTo(pos mgl64.Vec2) float64 {
	return pos.Sub(p.Pos).Len()
}

// Energy returns the particle's mechanical energy in b's field,
// kinetic plus gravitational potential. Meaningless for photons, whose
// speed is clamped each step.
func (p *Particle) Energy(b *field.Body) float64 {
	ke := 0.5 * p.Mass * p.Vel.LenSqr()
	r := p.DistanceTo(b.Pos)
	if r == 0 {
		return ke
	}
	return ke - b.G*b.M*p.Mass/r
}
