package config

// Presets are named ready-to-run scenes.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"orbits": {
		G: DefaultG, M: DefaultM, C: DefaultC, Dt: DefaultDt, Ticks: 2000,
		Particles: []ParticleConfig{
			{X: 100, Y: f(0), VY: 7.5},
			{X: -110, Y: f(0), VY: -7.0},
			{X: 0, Y: f(130), VX: -6.5},
			{X: 0, Y: f(-140), VX: 6.0},
		},
	},
	"photons": {
		// A fan of photons at increasing offsets: the lowest spiral
		// in, the rest are deflected by decreasing angles.
		G: DefaultG, M: DefaultM, C: DefaultC, Dt: DefaultDt, Ticks: 1500,
		Particles: []ParticleConfig{
			{X: -250, VX: DefaultC, Photon: true, OffsetFactor: f(0.8)},
			{X: -250, VX: DefaultC, Photon: true, OffsetFactor: f(1.5)},
			{X: -250, VX: DefaultC, Photon: true, OffsetFactor: f(2.5)},
			{X: -250, VX: DefaultC, Photon: true, OffsetFactor: f(4.0)},
			{X: -250, VX: DefaultC, Photon: true, OffsetFactor: f(8.0)},
		},
	},
	"plunge": {
		// Radial free fall from rest at several radii.
		G: DefaultG, M: DefaultM, C: DefaultC, Dt: DefaultDt, Ticks: 800,
		Particles: []ParticleConfig{
			{X: 40, Y: f(0)},
			{X: 80, Y: f(0)},
			{X: 0, Y: f(120)},
			{X: -160, Y: f(0)},
		},
	},
	"slingshot": {
		G: DefaultG, M: DefaultM, C: DefaultC, Dt: DefaultDt, Ticks: 1200,
		Particles: []ParticleConfig{
			{X: -250, Y: f(50), VX: 7},
			{X: -250, Y: f(30), VX: 7},
			{X: -250, Y: f(80), VX: 7},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Particles = make([]ParticleConfig, len(p.Particles))
	copy(cp.Particles, p.Particles)
	return &cp
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
