package metrics

import (
	"math"

	"github.com/san-kum/horizon/internal/sim"
)

// PhotonSpeed tracks the worst absolute deviation of any photon's
// speed from the clamp speed C. Anything beyond floating-point noise
// means the clamp is broken.
type PhotonSpeed struct {
	c      float64
	maxErr float64
}

func NewPhotonSpeed(c float64) *PhotonSpeed {
	return &PhotonSpeed{c: c}
}

func (m *PhotonSpeed) Name() string { return "photon_speed_err" }

func (m *PhotonSpeed) Observe(s sim.Snapshot) {
	for _, p := range s.Particles {
		if !p.Photon || p.Captured {
			continue
		}
		m.maxErr = math.Max(m.maxErr, math.Abs(p.Vel.Len()-m.c))
	}
}

func (m *PhotonSpeed) Value() float64 { return m.maxErr }

func (m *PhotonSpeed) Reset() { m.maxErr = 0 }
