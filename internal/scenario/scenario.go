// Package scenario loads projectile/environment descriptions from TOML.
//
// A scenario file looks like:
//
//	[projectile]
//	position  = [0.0, 1.0, 0.0]
//	velocity  = [1.0, 1.0, 0.0]
//	normalize = true
//	speed     = 1.0
//
//	[environment]
//	gravity = [0.0, -0.1, 0.0]
//	wind    = [-0.01, 0.0, 0.0]
//
//	[simulation]
//	max_ticks = 10000
//
// Missing keys keep the values of [Default]. Unknown keys are rejected.
// A vector key replaces the default as a whole and must have exactly
// three finite components.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	trtc "github.com/srufle/the-ray-tracer-challenge"
	"github.com/srufle/the-ray-tracer-challenge/internal/projectile"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("scenario: invalid")

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Projectile  ProjectileConfig  `toml:"projectile"`
	Environment EnvironmentConfig `toml:"environment"`
	Simulation  SimulationConfig  `toml:"simulation"`
}

// ProjectileConfig describes the starting state.
type ProjectileConfig struct {
	Position  []float32 `toml:"position"`
	Velocity  []float32 `toml:"velocity"`
	Normalize bool      `toml:"normalize"`
	Speed     float32   `toml:"speed"`
}

// EnvironmentConfig describes the constant forces.
type EnvironmentConfig struct {
	Gravity []float32 `toml:"gravity"`
	Wind    []float32 `toml:"wind"`
}

// SimulationConfig bounds the run.
type SimulationConfig struct {
	MaxTicks int `toml:"max_ticks"`
}

// Default returns the scenario of the original ticker: launched from
// (0, 1, 0) along the normalized (1, 1, 0) with gravity -0.1 and a
// head wind of -0.01.
func Default() Scenario {
	return Scenario{
		Projectile: ProjectileConfig{
			Position:  []float32{0, 1, 0},
			Velocity:  []float32{1, 1, 0},
			Normalize: true,
			Speed:     1,
		},
		Environment: EnvironmentConfig{
			Gravity: []float32{0, -0.1, 0},
			Wind:    []float32{-0.01, 0, 0},
		},
		Simulation: SimulationConfig{
			MaxTicks: 10000,
		},
	}
}

// Load reads and validates the scenario at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a scenario from r on top of Default and validates it.
func Parse(r io.Reader) (Scenario, error) {
	s := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Scenario{}, fmt.Errorf("scenario: unknown keys:\n%s", strict.String())
		}
		return Scenario{}, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks the constraints Build relies on.
func (s Scenario) Validate() error {
	if s.Simulation.MaxTicks <= 0 {
		return fmt.Errorf("%w: simulation.max_ticks must be > 0, got %d", ErrInvalid, s.Simulation.MaxTicks)
	}
	for _, f := range []struct {
		key string
		c   []float32
	}{
		{"projectile.position", s.Projectile.Position},
		{"projectile.velocity", s.Projectile.Velocity},
		{"environment.gravity", s.Environment.Gravity},
		{"environment.wind", s.Environment.Wind},
	} {
		if err := checkTriple(f.key, f.c); err != nil {
			return err
		}
	}
	if !finite(s.Projectile.Speed) {
		return fmt.Errorf("%w: projectile.speed must be finite, got %g", ErrInvalid, s.Projectile.Speed)
	}
	if s.Projectile.Normalize {
		if s.Projectile.Speed <= 0 {
			return fmt.Errorf("%w: projectile.speed must be > 0, got %g", ErrInvalid, s.Projectile.Speed)
		}
		v := vector(s.Projectile.Velocity)
		if v.Magnitude() < float32(trtc.Epsilon) {
			return fmt.Errorf("%w: projectile.velocity must be non-zero when normalize is set", ErrInvalid)
		}
	}
	return nil
}

// Build converts a validated scenario into simulation values. It panics
// if a vector field does not have three components. The
// velocity is normalized and scaled by Speed when Normalize is set.
func (s Scenario) Build() (projectile.Environment, projectile.Projectile) {
	velocity := vector(s.Projectile.Velocity)
	if s.Projectile.Normalize {
		velocity = velocity.Normalize().Mul(s.Projectile.Speed)
	}
	env := projectile.Environment{
		Gravity: vector(s.Environment.Gravity),
		Wind:    vector(s.Environment.Wind),
	}
	p := projectile.Projectile{
		Position: trtc.Point(s.Projectile.Position[0], s.Projectile.Position[1], s.Projectile.Position[2]),
		Velocity: velocity,
	}
	return env, p
}

func checkTriple(key string, c []float32) error {
	if len(c) != 3 {
		return fmt.Errorf("%w: %s must have 3 components, got %d", ErrInvalid, key, len(c))
	}
	for i, v := range c {
		if !finite(v) {
			return fmt.Errorf("%w: %s[%d] must be finite, got %g", ErrInvalid, key, i, v)
		}
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func vector(c []float32) trtc.Tuple {
	return trtc.Vector(c[0], c[1], c[2])
}
