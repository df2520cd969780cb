package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/horizon/internal/field"
	"github.com/san-kum/horizon/internal/particle"
	"github.com/san-kum/horizon/internal/sim"
)

func testBody(t *testing.T) *field.Body {
	t.Helper()
	b, err := field.NewBody(mgl64.Vec2{0, 0}, 1.0, 1000.0, 15.0)
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}
	return b
}

// circular orbit speed at radius r is sqrt(G*M/r)
func orbiter(b *field.Body, r float64) *particle.Particle {
	v := math.Sqrt(b.G * b.M / r)
	return particle.New(mgl64.Vec2{r, 0}, mgl64.Vec2{0, v}, false)
}

func runDrift(t *testing.T, dt float64, duration float64) float64 {
	t.Helper()
	b := testBody(t)
	d, err := sim.New(b, []*particle.Particle{orbiter(b, 100)}, dt)
	if err != nil {
		t.Fatalf("sim.New failed: %v", err)
	}

	m := NewEnergyDrift(b)
	d.AddMetric(m)

	if _, err := d.Run(context.Background(), int(duration/dt)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return m.Value()
}

func TestEnergyDriftBoundedAndShrinksWithDt(t *testing.T) {
	coarse := runDrift(t, 0.1, 50.0)
	fine := runDrift(t, 0.01, 50.0)

	if coarse <= 0 {
		t.Error("explicit Euler should drift on a circular orbit")
	}
	if coarse > 0.5 {
		t.Errorf("drift over 50s should stay bounded, got %f", coarse)
	}
	if fine >= coarse {
		t.Errorf("drift should shrink with dt: dt=0.01 gave %f, dt=0.1 gave %f", fine, coarse)
	}
}

func TestEnergyDriftIgnoresPhotons(t *testing.T) {
	b := testBody(t)
	ph := particle.New(mgl64.Vec2{-250, b.Rs * 1.5}, mgl64.Vec2{15, 0}, true)

	d, err := sim.New(b, []*particle.Particle{ph}, 0.1)
	if err != nil {
		t.Fatalf("sim.New failed: %v", err)
	}

	m := NewEnergyDrift(b)
	d.AddMetric(m)

	if _, err := d.Run(context.Background(), 200); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if m.Value() != 0 {
		t.Errorf("photon-only run should report zero drift, got %f", m.Value())
	}
}

func TestPhotonSpeedError(t *testing.T) {
	b := testBody(t)
	ph := particle.New(mgl64.Vec2{-250, b.Rs * 1.5}, mgl64.Vec2{15, 0}, true)

	d, err := sim.New(b, []*particle.Particle{ph}, 0.1)
	if err != nil {
		t.Fatalf("sim.New failed: %v", err)
	}

	m := NewPhotonSpeed(b.C)
	d.AddMetric(m)

	if _, err := d.Run(context.Background(), 1000); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if m.Value() > 1e-9 {
		t.Errorf("photon speed error too large: %g", m.Value())
	}
}

func TestCaptures(t *testing.T) {
	b := testBody(t)
	inside := particle.New(mgl64.Vec2{8, 0}, mgl64.Vec2{0, 0}, false)
	outside := orbiter(b, 100)

	d, err := sim.New(b, []*particle.Particle{inside, outside}, 0.1)
	if err != nil {
		t.Fatalf("sim.New failed: %v", err)
	}

	m := NewCaptures()
	d.AddMetric(m)

	if _, err := d.Run(context.Background(), 50); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if m.Value() != 1 {
		t.Errorf("expected 1 capture, got %g", m.Value())
	}
	if m.FirstTick() != 1 {
		t.Errorf("expected first capture on tick 1, got %d", m.FirstTick())
	}
}

func TestMetricReset(t *testing.T) {
	m := NewCaptures()
	m.Observe(sim.Snapshot{Tick: 3, Particles: []sim.ParticleView{{Captured: true}}})
	if m.Value() != 1 || m.FirstTick() != 3 {
		t.Fatal("observe did not register capture")
	}
	m.Reset()
	if m.Value() != 0 || m.FirstTick() != -1 {
		t.Error("reset did not clear state")
	}
}
