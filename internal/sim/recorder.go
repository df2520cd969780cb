package sim

// Recorder is a Sink that remembers, per particle, the tick on which
// it was first observed captured. -1 means never captured.
type Recorder struct {
	captureTick []int
	ticks       int
}

func NewRecorder(numParticles int) *Recorder {
	ticks := make([]int, numParticles)
	for i := range ticks {
		ticks[i] = -1
	}
	return &Recorder{captureTick: ticks}
}

func (r *Recorder) OnTick(s Snapshot) {
	r.ticks = s.Tick
	for i, p := range s.Particles {
		if i < len(r.captureTick) && p.Captured && r.captureTick[i] == -1 {
			r.captureTick[i] = s.Tick
		}
	}
}

// CaptureTick returns the tick on which particle i was first seen
// captured, or -1 if it stayed active (or i is out of range).
func (r *Recorder) CaptureTick(i int) int {
	if i < 0 || i >= len(r.captureTick) {
		return -1
	}
	return r.captureTick[i]
}

// Ticks returns the last tick observed.
func (r *Recorder) Ticks() int { return r.ticks }
