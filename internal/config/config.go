// Package config loads, validates and resolves run configuration: the
// field constants, time step, tick count and the initial particle
// descriptors.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/horizon/internal/field"
	"github.com/san-kum/horizon/internal/particle"
)

const (
	DefaultG     = 1.0
	DefaultM     = 1000.0
	DefaultC     = 15.0
	DefaultDt    = 0.1
	DefaultTicks = 1000
)

var (
	// ErrNoParticles indicates a configuration without any particles.
	ErrNoParticles = errors.New("config: at least one particle required")

	// ErrUnresolvedY indicates a particle with neither an absolute
	// vertical position nor an offset factor.
	ErrUnresolvedY = errors.New("config: particle y is null and no offset_factor given")

	// ErrNonPositiveDt indicates a zero or negative time step.
	ErrNonPositiveDt = errors.New("config: dt must be positive")

	// ErrNonPositiveTicks indicates a zero or negative tick count.
	ErrNonPositiveTicks = errors.New("config: ticks must be positive")

	// ErrNonPositiveMass indicates a particle with non-positive mass.
	ErrNonPositiveMass = errors.New("config: particle mass must be positive")
)

type Config struct {
	G     float64 `yaml:"g"`
	M     float64 `yaml:"m"`
	C     float64 `yaml:"c"`
	Dt    float64 `yaml:"dt"`
	Ticks int     `yaml:"ticks"`

	BodyX float64 `yaml:"body_x"`
	BodyY float64 `yaml:"body_y"`

	Particles []ParticleConfig `yaml:"particles"`
}

// ParticleConfig describes one initial particle. Y may be null in the
// YAML, in which case OffsetFactor must be set and the vertical
// position resolves to Rs*OffsetFactor once the field is known. That
// way photon starting offsets scale with G, M and C.
type ParticleConfig struct {
	X            float64  `yaml:"x"`
	Y            *float64 `yaml:"y"`
	VX           float64  `yaml:"vx"`
	VY           float64  `yaml:"vy"`
	Mass         float64  `yaml:"mass,omitempty"`
	Photon       bool     `yaml:"photon,omitempty"`
	OffsetFactor *float64 `yaml:"offset_factor,omitempty"`
}

// DefaultConfig returns the built-in scene: four orbiters, one
// slingshot pass and two photons offset by multiples of the horizon
// radius.
func DefaultConfig() *Config {
	return &Config{
		G:     DefaultG,
		M:     DefaultM,
		C:     DefaultC,
		Dt:    DefaultDt,
		Ticks: DefaultTicks,
		Particles: []ParticleConfig{
			{X: 100, Y: f(0), VY: 7.5},
			{X: -110, Y: f(0), VY: -7.0},
			{X: 0, Y: f(130), VX: -6.5},
			{X: 0, Y: f(-140), VX: 6.0},
			{X: -250, Y: f(50), VX: 7},
			{X: -250, VX: DefaultC, Photon: true, OffsetFactor: f(1.5)},
			{X: -250, VX: DefaultC, Photon: true, OffsetFactor: f(0.8)},
		},
	}
}

func f(v float64) *float64 { return &v }

// Load reads a YAML config, starting from defaults so omitted fields
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Particles = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Particles) == 0 {
		cfg.Particles = DefaultConfig().Particles
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects anything that would produce non-finite state
// downstream. Field constants are validated again by field.NewBody;
// the checks here cover what only the config layer knows.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w, got %g", ErrNonPositiveDt, c.Dt)
	}
	if c.Ticks <= 0 {
		return fmt.Errorf("%w, got %d", ErrNonPositiveTicks, c.Ticks)
	}
	if len(c.Particles) == 0 {
		return ErrNoParticles
	}
	for i, p := range c.Particles {
		if p.Y == nil && p.OffsetFactor == nil {
			return fmt.Errorf("%w (particle %d)", ErrUnresolvedY, i)
		}
		if p.Mass < 0 {
			return fmt.Errorf("%w: particle %d has mass %g", ErrNonPositiveMass, i, p.Mass)
		}
	}
	return nil
}

// Build validates the configuration and constructs the body and the
// initial particle set. Offset-factor vertical positions are resolved
// here, exactly once, after the horizon radius is known.
func (c *Config) Build() (*field.Body, []*particle.Particle, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	body, err := field.NewBody(mgl64.Vec2{c.BodyX, c.BodyY}, c.G, c.M, c.C)
	if err != nil {
		return nil, nil, err
	}

	particles := make([]*particle.Particle, len(c.Particles))
	for i, pc := range c.Particles {
		y := 0.0
		if pc.OffsetFactor != nil {
			y = body.Rs * *pc.OffsetFactor
		} else {
			y = *pc.Y
		}

		p := particle.New(mgl64.Vec2{pc.X, y}, mgl64.Vec2{pc.VX, pc.VY}, pc.Photon)
		if pc.Mass > 0 {
			p.Mass = pc.Mass
		}
		particles[i] = p
	}

	return body, particles, nil
}
