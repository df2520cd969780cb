// Package sim drives the simulation: it owns the body, the particle
// collection and the fixed time step, advances everything one tick at
// a time and fans per-tick snapshots out to sinks.
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/horizon/internal/field"
	"github.com/san-kum/horizon/internal/particle"
)

var (
	// ErrNonPositiveDt indicates a zero or negative time step.
	ErrNonPositiveDt = errors.New("sim: dt must be positive")

	// ErrNonPositiveTicks indicates a zero or negative tick count.
	ErrNonPositiveTicks = errors.New("sim: tick count must be positive")

	// ErrNonPositiveParticleMass indicates a particle with invalid mass.
	ErrNonPositiveParticleMass = errors.New("sim: particle mass must be positive")
)

// Driver advances all particles under a fixed body and time step.
// Not safe for concurrent use; Tick and Run must be called from a
// single goroutine.
type Driver struct {
	body      *field.Body
	particles []*particle.Particle
	dt        float64
	tick      int
	sinks     []Sink
	metrics   []Metric
}

// New validates dt and the particle set and returns a driver at tick 0.
func New(body *field.Body, particles []*particle.Particle, dt float64) (*Driver, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrNonPositiveDt, dt)
	}
	for i, p := range particles {
		if p.Mass <= 0 {
			return nil, fmt.Errorf("%w: particle %d has mass %g", ErrNonPositiveParticleMass, i, p.Mass)
		}
	}
	return &Driver{body: body, particles: particles, dt: dt}, nil
}

func (d *Driver) AddSink(s Sink)     { d.sinks = append(d.sinks, s) }
func (d *Driver) AddMetric(m Metric) { d.metrics = append(d.metrics, m) }

// Body returns the driver's fixed body.
func (d *Driver) Body() *field.Body { return d.body }

// Tick advances every active particle by one step and notifies sinks
// and metrics with the post-tick snapshot.
//
// The capture test uses the pre-step distance, but the flag is latched
// after the step call, so the step on the capture tick still runs and
// the path records one final point strictly inside the horizon before
// the particle freezes. From the next tick on the flag makes the step
// a true no-op. This one-tick lag is deliberate; see DESIGN.md for the
// case against "fixing" it.
func (d *Driver) Tick() Snapshot {
	for _, p := range d.particles {
		if p.Captured {
			continue
		}
		dist := p.DistanceTo(d.body.Pos)
		p.Step(d.dt, d.body)
		if dist < d.body.Rs {
			p.Captured = true
		}
	}
	d.tick++

	snap := d.Snapshot()
	for _, s := range d.sinks {
		s.OnTick(snap)
	}
	for _, m := range d.metrics {
		m.Observe(snap)
	}
	return snap
}

// Snapshot returns the current state with path histories copied, so
// later ticks cannot alias into what a consumer retained.
func (d *Driver) Snapshot() Snapshot {
	views := make([]ParticleView, len(d.particles))
	for i, p := range d.particles {
		path := make([]mgl64.Vec2, len(p.Path))
		copy(path, p.Path)
		views[i] = ParticleView{
			Pos:      p.Pos,
			Vel:      p.Vel,
			Mass:     p.Mass,
			Photon:   p.Photon,
			Captured: p.Captured,
			Path:     path,
		}
	}
	return Snapshot{
		Tick:      d.tick,
		Time:      float64(d.tick) * d.dt,
		Body:      d.body.Pos,
		Rs:        d.body.Rs,
		Particles: views,
	}
}

// Run advances the driver for a fixed number of ticks, honoring
// context cancellation between ticks. The result carries the final
// snapshot and the values of all registered metrics.
func (d *Driver) Run(ctx context.Context, ticks int) (*Result, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNonPositiveTicks, ticks)
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return d.result(), ctx.Err()
		default:
		}
		d.Tick()
	}

	return d.result(), nil
}

func (d *Driver) result() *Result {
	r := &Result{
		Ticks:   d.tick,
		Final:   d.Snapshot(),
		Metrics: make(map[string]float64, len(d.metrics)),
	}
	for _, m := range d.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
	return r
}
