// Package asteroids implements the simulation core of a vector-style space
// shooter on a toroidal playfield: ship, asteroids, saucers, bullets and
// particles, the collision pass that scores and splits them, and the
// wave/life director that drives the session.
package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// AsteroidSize is the size tier of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall AsteroidSize = iota
	AsteroidMedium
	AsteroidLarge
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// asteroidShape holds the per-size constants. Diameter and speed are
// fractions of the shorter world edge.
type asteroidShape struct {
	diameter float64
	sides    int
	spin     float64 // max angular velocity, radians per tick
	speed    float64
}

var asteroidShapes = [...]asteroidShape{
	AsteroidSmall:  {diameter: 0.05, sides: 6, spin: 0.2, speed: 0.004},
	AsteroidMedium: {diameter: 0.1, sides: 9, spin: 0.1, speed: 0.002},
	AsteroidLarge:  {diameter: 0.2, sides: 12, spin: 0.05, speed: 0.001},
}

// Asteroid is a drifting, spinning rock.
type Asteroid struct {
	Size          AsteroidSize
	Diameter      float64
	Pos           core.Vec2
	Vel           core.Vec2
	Rotation      float64
	RotationSpeed float64
	Outline       []core.Vec2 // vertex offsets from Pos before rotation

	dead bool
}

// NewAsteroidAt creates an asteroid at pos with a jagged outline, a random
// heading and a random spin direction.
func NewAsteroidAt(size AsteroidSize, pos core.Vec2, edge float64, rng core.Random) *Asteroid {
	shape := asteroidShapes[size]
	diameter := edge * shape.diameter

	outline := make([]core.Vec2, shape.sides)
	for i := range outline {
		r := diameter / 2 * core.RangeF(rng, 0.6, 1.0)
		angle := float64(i) / float64(shape.sides) * 2 * math.Pi
		outline[i] = core.V(math.Cos(angle)*r, math.Sin(angle)*r)
	}

	heading := core.RangeF(rng, 0, 2*math.Pi)
	rotation := core.RangeF(rng, 0, 2*math.Pi)
	spin := shape.spin * core.RangeF(rng, -1, 1)

	return &Asteroid{
		Size:          size,
		Diameter:      diameter,
		Pos:           pos,
		Vel:           core.FromAngle(heading, edge*shape.speed),
		Rotation:      rotation,
		RotationSpeed: spin,
		Outline:       outline,
	}
}

// NewAsteroid creates an asteroid on a random edge of the playfield.
func NewAsteroid(size AsteroidSize, b core.Bounds, rng core.Random) *Asteroid {
	var pos core.Vec2
	switch rng.Intn(4) {
	case 0:
		pos = core.V(0, core.RangeF(rng, 0, b.H))
	case 1:
		pos = core.V(b.W, core.RangeF(rng, 0, b.H))
	case 2:
		pos = core.V(core.RangeF(rng, 0, b.W), 0)
	default:
		pos = core.V(core.RangeF(rng, 0, b.W), b.H)
	}
	return NewAsteroidAt(size, pos, b.MinEdge(), rng)
}

// Advance moves the asteroid one tick.
func (a *Asteroid) Advance(b core.Bounds) {
	a.Pos = core.WrapVec(a.Pos.Add(a.Vel), b)
	a.Rotation += a.RotationSpeed
}

// Children returns the size of the fragments this asteroid breaks into
// and how many there are. Small asteroids leave nothing behind.
func (a *Asteroid) Children() (AsteroidSize, int) {
	switch a.Size {
	case AsteroidLarge:
		return AsteroidMedium, 2
	case AsteroidMedium:
		return AsteroidSmall, 2
	default:
		return AsteroidSmall, 0
	}
}

func (a *Asteroid) Alive() bool         { return !a.dead }
func (a *Asteroid) Destroy()            { a.dead = true }
func (a *Asteroid) Position() core.Vec2 { return a.Pos }
func (a *Asteroid) Radius() float64     { return a.Diameter / 2 }
