package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Particle is a cosmetic spark. It never collides and never wraps.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Lifespan float64
	Decay    float64
}

// Advance moves the particle and burns lifespan.
func (p *Particle) Advance() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Lifespan -= p.Decay
}

// Alive reports whether the particle still has lifespan left.
func (p Particle) Alive() bool { return p.Lifespan > lifeEpsilon }

const (
	sparkDecay  = 0.01
	debrisDecay = 0.1
	ringDecay   = 0.025
)

func sparkSpeed(rng core.Random) float64 { return core.RangeF(rng, 0.4, 1.0) }

// AppendRadial appends count sparks flying out of pos in random directions.
func AppendRadial(dst []Particle, rng core.Random, pos core.Vec2, count int) []Particle {
	for range count {
		dir := core.RangeF(rng, 0, 2*math.Pi)
		vel := core.FromAngle(dir, sparkSpeed(rng))
		dst = append(dst, Particle{Pos: pos, Vel: vel, Lifespan: core.RangeF(rng, 0.2, 1.0), Decay: sparkDecay})
	}
	return dst
}

// AppendConical appends count sparks inside a cone of the given spread
// around dir. dir is a ship rotation, so zero points down the screen.
func AppendConical(dst []Particle, rng core.Random, pos core.Vec2, dir, spread float64, count int) []Particle {
	for range count {
		angle := dir + core.RangeF(rng, -spread/2, spread/2)
		vel := core.V(0, sparkSpeed(rng)).Rotate(angle)
		dst = append(dst, Particle{Pos: pos, Vel: vel, Lifespan: core.RangeF(rng, 0.2, 1.0), Decay: sparkDecay})
	}
	return dst
}

// AppendDebris appends count long-lived, fast-fading fragments.
func AppendDebris(dst []Particle, rng core.Random, pos core.Vec2, count int) []Particle {
	for range count {
		dir := core.RangeF(rng, 0, 2*math.Pi)
		vel := core.FromAngle(dir, sparkSpeed(rng))
		dst = append(dst, Particle{Pos: pos, Vel: vel, Lifespan: core.RangeF(rng, 2.0, 5.0), Decay: debrisDecay})
	}
	return dst
}

// AppendRing appends count sparks evenly spaced on a ring around pos that
// collapse towards it.
func AppendRing(dst []Particle, rng core.Random, pos core.Vec2, radius float64, count int) []Particle {
	for i := range count {
		dir := 2 * math.Pi / float64(count) * float64(i)
		vel := core.FromAngle(dir, sparkSpeed(rng))
		dst = append(dst, Particle{
			Pos:      pos.Sub(vel.Scale(radius)),
			Vel:      vel,
			Lifespan: core.RangeF(rng, 0.2, 1.0),
			Decay:    ringDecay,
		})
	}
	return dst
}
