// Package field defines the fixed gravitating body at the center of a
// run: its position, the field constants G, M and C, and the derived
// horizon radius inside which particles are captured.
package field

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Domain errors for field parameters.
var (
	// ErrNonPositiveG indicates a zero or negative gravitational constant.
	ErrNonPositiveG = errors.New("field: gravitational constant must be positive")

	// ErrNonPositiveMass indicates a zero or negative body mass.
	ErrNonPositiveMass = errors.New("field: mass must be positive")

	// ErrNonPositiveClamp indicates a zero or negative clamp speed.
	ErrNonPositiveClamp = errors.New("field: clamp speed must be positive")
)

// Body is the attracting point mass. Its position and constants are
// fixed for the lifetime of a run; Rs is derived once in NewBody and
// never recomputed.
type Body struct {
	Pos mgl64.Vec2

	G float64 // gravitational constant, simulation units
	M float64 // body mass
	C float64 // clamp speed for photon-flagged particles

	// Rs is the horizon radius 2*G*M/C^2. Particles strictly inside
	// this distance are captured by the driver.
	Rs float64
}

// NewBody validates the field constants and returns a Body with the
// horizon radius computed. Non-positive G, M or C is fatal here so
// that no tick ever runs with a non-finite field.
func NewBody(pos mgl64.Vec2, g, m, c float64) (*Body, error) {
	switch {
	case g <= 0:
		return nil, fmt.Errorf("%w, got %g", ErrNonPositiveG, g)
	case m <= 0:
		return nil, fmt.Errorf("%w, got %g", ErrNonPositiveMass, m)
	case c <= 0:
		return nil, fmt.Errorf("%w, got %g", ErrNonPositiveClamp, c)
	}

	return &Body{
		Pos: pos,
		G:   g,
		M:   m,
		C:   c,
		Rs:  2 * g * m / (c * c),
	}, nil
}
