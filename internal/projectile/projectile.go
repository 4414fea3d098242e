// Package projectile simulates a projectile moving under constant gravity
// and wind in discrete ticks.
package projectile

import (
	"errors"
	"fmt"

	trtc "github.com/srufle/the-ray-tracer-challenge"
)

// ErrTickLimit is returned when the projectile has not landed after the
// maximum number of ticks.
var ErrTickLimit = errors.New("projectile: tick limit reached before landing")

// Projectile has a position (a point) and a velocity (a vector).
type Projectile struct {
	Position trtc.Tuple
	Velocity trtc.Tuple
}

// Environment has gravity and wind, both vectors.
type Environment struct {
	Gravity trtc.Tuple
	Wind    trtc.Tuple
}

// Landed reports whether the projectile is at or below the ground (y <= 0).
func (p Projectile) Landed() bool {
	return p.Position.Y <= 0
}

// Tick advances p by one unit of time: the position moves by the
// velocity, then gravity and wind are added to the velocity.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory ticks p until it lands and returns the state after each
// tick. A projectile that starts on the ground yields no steps.
//
// If it has not landed after maxTicks ticks, the steps so far are
// returned together with an error matching ErrTickLimit.
func Trajectory(env Environment, p Projectile, maxTicks int) ([]Projectile, error) {
	var steps []Projectile
	for !p.Landed() {
		if len(steps) >= maxTicks {
			return steps, fmt.Errorf("%w: %d ticks, y=%g", ErrTickLimit, maxTicks, p.Position.Y)
		}
		p = Tick(env, p)
		steps = append(steps, p)
	}
	return steps, nil
}
