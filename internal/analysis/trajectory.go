// Package analysis computes derived quantities from finished
// trajectories: closest approach to the body and deflection angle.
package analysis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/horizon/internal/sim"
)

// ClosestApproach returns the smallest distance between the path and
// the body, and the path index where it occurs. Returns (0, -1) for
// an empty path.
func ClosestApproach(path []mgl64.Vec2, body mgl64.Vec2) (float64, int) {
	if len(path) == 0 {
		return 0, -1
	}
	min := math.Inf(1)
	idx := -1
	for i, pt := range path {
		if d := pt.Sub(body).Len(); d < min {
			min = d
			idx = i
		}
	}
	return min, idx
}

// DeflectionAngle returns the angle in radians between the initial and
// final travel direction of a path, estimated from its first and last
// segments. Meaningful for particles that pass the body and leave;
// returns NaN when the path is too short to define two directions.
func DeflectionAngle(path []mgl64.Vec2) float64 {
	if len(path) < 3 {
		return math.NaN()
	}

	in := path[1].Sub(path[0])
	out := path[len(path)-1].Sub(path[len(path)-2])
	if in.Len() == 0 || out.Len() == 0 {
		return math.NaN()
	}

	cos := in.Dot(out) / (in.Len() * out.Len())
	// Clamp against rounding before acos.
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Summary describes one particle's trajectory after a run.
type Summary struct {
	ClosestApproach float64
	Deflection      float64 // radians; NaN for degenerate paths
	Escaped         bool    // ended outside the horizon without capture
}

// Summarize computes summaries for every particle in a snapshot.
func Summarize(s sim.Snapshot) []Summary {
	out := make([]Summary, len(s.Particles))
	for i, p := range s.Particles {
		min, _ := ClosestApproach(p.Path, s.Body)
		out[i] = Summary{
			ClosestApproach: min,
			Deflection:      DeflectionAngle(p.Path),
			Escaped:         !p.Captured,
		}
	}
	return out
}
