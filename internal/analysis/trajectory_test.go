package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/horizon/internal/field"
	"github.com/san-kum/horizon/internal/particle"
	"github.com/san-kum/horizon/internal/sim"
)

func TestClosestApproach(t *testing.T) {
	path := []mgl64.Vec2{{-10, 5}, {0, 5}, {10, 5}}
	d, idx := ClosestApproach(path, mgl64.Vec2{0, 0})
	if math.Abs(d-5) > 1e-12 {
		t.Errorf("expected distance 5, got %f", d)
	}
	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}

	if _, idx := ClosestApproach(nil, mgl64.Vec2{0, 0}); idx != -1 {
		t.Errorf("expected index -1 for empty path, got %d", idx)
	}
}

func TestDeflectionAngleStraightLine(t *testing.T) {
	path := []mgl64.Vec2{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if got := DeflectionAngle(path); math.Abs(got) > 1e-12 {
		t.Errorf("expected zero deflection, got %f", got)
	}
}

func TestDeflectionAngleRightTurn(t *testing.T) {
	path := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}}
	if got := DeflectionAngle(path); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("expected pi/2, got %f", got)
	}
}

func TestDeflectionAngleDegenerate(t *testing.T) {
	if got := DeflectionAngle([]mgl64.Vec2{{0, 0}, {1, 0}}); !math.IsNaN(got) {
		t.Errorf("expected NaN for short path, got %f", got)
	}
}

func TestSummarizePhotonDeflection(t *testing.T) {
	b, err := field.NewBody(mgl64.Vec2{0, 0}, 1.0, 1000.0, 15.0)
	if err != nil {
		t.Fatal(err)
	}

	// A photon well above the horizon is bent but escapes; one aimed
	// close spirals in and is captured.
	far := particle.New(mgl64.Vec2{-250, b.Rs * 8}, mgl64.Vec2{15, 0}, true)
	near := particle.New(mgl64.Vec2{-250, b.Rs * 0.8}, mgl64.Vec2{15, 0}, true)

	d, err := sim.New(b, []*particle.Particle{far, near}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	result, err := d.Run(context.Background(), 1000)
	if err != nil {
		t.Fatal(err)
	}

	summaries := Summarize(result.Final)

	if !summaries[0].Escaped {
		t.Error("far photon should escape")
	}
	if summaries[0].Deflection <= 0 || summaries[0].Deflection > math.Pi/2 {
		t.Errorf("far photon deflection out of range: %f", summaries[0].Deflection)
	}
	if summaries[1].Escaped {
		t.Error("near photon should be captured")
	}
	if summaries[1].ClosestApproach >= b.Rs {
		t.Errorf("captured photon closest approach %f should be inside Rs %f", summaries[1].ClosestApproach, b.Rs)
	}
}
